package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-api/internal/domain"
	"github.com/vfg2006/rank-api/internal/usecases/registering"
	"github.com/vfg2006/rank-api/pkg/apiErrors"
	"github.com/vfg2006/rank-api/pkg/metrics"
)

// CreateUser cria um novo usuário
func CreateUser(service registering.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &request)
		if err != nil {
			logrus.Error(err)
			writeUserError(w, err, "Erro ao criar usuário")
			return
		}

		metrics.UsersCreated.Inc()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetUser retorna informações do usuário por ID
func GetUser(service registering.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			writeUserError(w, err, "Erro ao buscar usuário")
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// writeUserError traduz erros do serviço de usuários para a resposta HTTP
func writeUserError(w http.ResponseWriter, err error, fallbackMessage string) {
	var userErr *registering.UserError
	if errors.As(err, &userErr) {
		apiErrors.WriteError(w, userErr.Code, userErr.Err.Error(), nil)
		return
	}

	apiErr := apiErrors.FromError(err, apiErrors.ErrDatabaseOperation)
	apiErrors.WriteError(w, apiErr.Code, fallbackMessage, apiErr.Message)
}
