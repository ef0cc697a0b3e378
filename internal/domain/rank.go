package domain

import (
	"time"
)

// Rank representa a média de notas de um item dentro de um projeto.
// A média é incremental: cada nova nota atualiza o campo Average sem
// recalcular a partir do histórico.
type Rank struct {
	// PK é project_id+item_id, o tamanho total é 42 (21+21) já que os ids são gerados via nanoid()
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	ItemID    string  `json:"itemId"`
	Total     int64   `json:"total"`
	Average   float64 `json:"average"`
	// Min guarda a menor nota que o item pode receber (1 para 1-5, 0 para 0-20 ou 0-100 por exemplo)
	Min float64 `json:"min"`
	// Max guarda a maior nota que o item pode receber (5 para 1-5, 20 para 0-20 ou 100 para 0-100 por exemplo)
	Max       float64    `json:"max"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// ComputedID retorna o id derivado do projeto e do item, sem separador
func (r *Rank) ComputedID() string {
	return r.ProjectID + r.ItemID
}

// ComputeID recalcula o campo ID; deve ser chamado antes de qualquer persistência
// sempre que ProjectID ou ItemID mudarem
func (r *Rank) ComputeID() {
	r.ID = r.ComputedID()
}

// UpdateScore aplica uma nova nota à média incremental. Quando Total == 0 o
// valor anterior de Average é descartado pela própria fórmula.
// TODO: adicionar tratamento de erro para rejeitar score < min || score > max
func (r *Rank) UpdateScore(score float64) {
	oldAverage := r.Average
	r.Average = ((oldAverage * float64(r.Total)) + score) / float64(r.Total+1)
	r.Total++
}

// CreateRankRequest é o payload de criação de item
type CreateRankRequest struct {
	ItemID string  `json:"itemId"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// RankScoreRequest é o payload de submissão de nota
type RankScoreRequest struct {
	Score float64 `json:"score"`
}
