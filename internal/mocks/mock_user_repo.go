package mocks

import (
	"context"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/google/uuid"
)

type MockUserRepo struct {
	domain.UserRepository
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}
