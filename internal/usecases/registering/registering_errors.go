package registering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de usuários
var (
	ErrUsernameRequired = errors.New("username é obrigatório")
	ErrGenerateID       = errors.New("erro ao gerar id do usuário")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// UserError é um erro com contexto adicional para usuários
type UserError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *UserError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError cria um novo UserError
func NewUserError(err error, code string, details string) *UserError {
	return &UserError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
