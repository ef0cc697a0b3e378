package ranking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de ranking
var (
	// Erros de validação
	ErrItemIDRequired = errors.New("itemId é obrigatório")
	ErrInvalidBounds  = errors.New("min deve ser menor ou igual a max")

	// Erros de negócio
	ErrRankNotFound = errors.New("rank não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// RankError é um erro com contexto adicional para ranking
type RankError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RankID  string // ID do rank envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RankError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RankError) Unwrap() error {
	return e.Err
}

// NewRankError cria um novo RankError
func NewRankError(err error, code string, details string) *RankError {
	return &RankError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRankErrorWithID cria um novo RankError com o id do rank
func NewRankErrorWithID(err error, code string, rankID string, details string) *RankError {
	return &RankError{
		Err:     err,
		Code:    code,
		RankID:  rankID,
		Details: details,
	}
}
