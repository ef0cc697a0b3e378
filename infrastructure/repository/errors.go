package repository

import (
	"github.com/pkg/errors"
)

// Ausência em leituras pontuais (Get) é sinalizada com (nil, nil);
// ErrRankNotFound cobre as operações que exigem que o registro exista.
var ErrRankNotFound = errors.New("rank não encontrado")
