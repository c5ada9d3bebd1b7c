package mocks

import (
	"context"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockScreeningRepo struct {
	mock.Mock
	domain.ScreeningRepository
}

func (m *MockScreeningRepo) GetByID(ctx context.Context, id int) (*domain.Screening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screening), args.Error(1)
}
