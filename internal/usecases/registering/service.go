// Package registering cuida do cadastro e consulta de usuários
package registering

import (
	"context"
	"time"

	"github.com/vfg2006/rank-api/infrastructure/repository"
	"github.com/vfg2006/rank-api/internal/domain"
	"github.com/vfg2006/rank-api/pkg/apiErrors"
	"github.com/vfg2006/rank-api/pkg/utils"
)

type UserService interface {
	CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	userRepository repository.UserRepository
}

func NewService(userRepository repository.UserRepository) UserService {
	return &Service{
		userRepository: userRepository,
	}
}

func (s *Service) CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error) {
	if request.Username == "" {
		return nil, NewUserError(ErrUsernameRequired, apiErrors.ErrMissingRequiredData, "username não informado")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewUserError(ErrGenerateID, apiErrors.ErrInternalServer, "")
	}

	user := &domain.User{
		ID:        id,
		Username:  request.Username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, NewUserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao criar usuário")
	}

	return user, nil
}

// GetUser retorna (nil, nil) quando o usuário não existe
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, NewUserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao buscar usuário")
	}

	return user, nil
}
