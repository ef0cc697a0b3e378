package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-api/internal/domain"
	"github.com/vfg2006/rank-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-api/pkg/apiErrors"
	"github.com/vfg2006/rank-api/pkg/metrics"
)

// CreateItem cria um novo item de ranking dentro de um projeto
func CreateItem(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("projectId")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		var request domain.CreateRankRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		rank, err := service.CreateItem(r.Context(), projectID, &request)
		if err != nil {
			logrus.Error(err)
			writeRankError(w, err, "Erro ao criar item")
			return
		}

		metrics.RanksCreated.Inc()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(rank); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetItem retorna um item de ranking por projeto e item
func GetItem(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		projectID := params.ByName("projectId")
		itemID := params.ByName("itemId")

		rank, err := service.GetItem(r.Context(), projectID, itemID)
		if err != nil {
			logrus.Error(err)
			writeRankError(w, err, "Erro ao buscar item")
			return
		}

		if rank == nil {
			apiErrors.WriteError(w, apiErrors.ErrRankNotFound, "Item não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rank); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RankItem aplica uma nota ao item
func RankItem(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		projectID := params.ByName("projectId")
		itemID := params.ByName("itemId")

		var request domain.RankScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.RankItem(r.Context(), projectID, itemID, request.Score); err != nil {
			logrus.Error(err)
			writeRankError(w, err, "Erro ao aplicar nota")
			return
		}

		metrics.ScoresSubmitted.Inc()

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteItem marca um item como excluído (soft delete)
func DeleteItem(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		projectID := params.ByName("projectId")
		itemID := params.ByName("itemId")

		if err := service.DeleteItem(r.Context(), projectID, itemID); err != nil {
			logrus.Error(err)
			writeRankError(w, err, "Erro ao excluir item")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeRankError traduz erros do serviço de ranking para a resposta HTTP
func writeRankError(w http.ResponseWriter, err error, fallbackMessage string) {
	var rankErr *ranking.RankError
	if errors.As(err, &rankErr) {
		apiErrors.WriteError(w, rankErr.Code, rankErr.Err.Error(), nil)
		return
	}

	apiErr := apiErrors.FromError(err, apiErrors.ErrDatabaseOperation)
	apiErrors.WriteError(w, apiErr.Code, fallbackMessage, apiErr.Message)
}
