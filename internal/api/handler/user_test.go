package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/rank-api/internal/domain"
	"github.com/vfg2006/rank-api/internal/usecases/registering"
	"github.com/vfg2006/rank-api/internal/usecases/registering/mocks"
	"github.com/vfg2006/rank-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Criação com sucesso responde 201 com o usuário", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)
		service.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(&domain.User{ID: "V1StGXR8_Z5jdHi6B-myT", Username: "alice"}, nil)

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodPost, "/v1/users",
			`{"username":"alice"}`, httprouter.Params{})

		CreateUser(service)(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var user domain.User
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)
		assert.Len(t, user.ID, 21)
	})

	t.Run("Corpo inválido responde 400", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodPost, "/v1/users", `{`, httprouter.Params{})

		CreateUser(service)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Username ausente responde 400", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)
		service.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, registering.NewUserError(registering.ErrUsernameRequired, apiErrors.ErrMissingRequiredData, ""))

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodPost, "/v1/users", `{}`, httprouter.Params{})

		CreateUser(service)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("Falha de banco responde 500", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)
		service.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, registering.NewUserError(registering.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ""))

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodPost, "/v1/users",
			`{"username":"alice"}`, httprouter.Params{})

		CreateUser(service)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userParams := httprouter.Params{{Key: "id", Value: "u1"}}

	t.Run("Usuário existente responde 200", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)
		service.EXPECT().
			GetUser(gomock.Any(), "u1").
			Return(&domain.User{ID: "u1", Username: "alice"}, nil)

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodGet, "/v1/users/u1", "", userParams)

		GetUser(service)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var user domain.User
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("ID não informado responde 400", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodGet, "/v1/users/", "", httprouter.Params{})

		GetUser(service)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("Usuário inexistente responde 404", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)
		service.EXPECT().
			GetUser(gomock.Any(), "u1").
			Return(nil, nil)

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodGet, "/v1/users/u1", "", userParams)

		GetUser(service)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrUserNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Erro sem código conhecido responde 500 com detalhes", func(t *testing.T) {
		service := mocks.NewMockUserService(ctrl)
		service.EXPECT().
			GetUser(gomock.Any(), "u1").
			Return(nil, errors.New("conexão recusada"))

		rec := httptest.NewRecorder()
		req := newHandlerRequest(http.MethodGet, "/v1/users/u1", "", userParams)

		GetUser(service)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
		assert.Equal(t, "conexão recusada", apiErr.Details)
	})
}
