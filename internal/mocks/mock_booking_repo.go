package mocks

import (
	"context"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) GetTakenSeats(ctx context.Context, screeningID int) ([]string, error) {
	args := m.Called(ctx, screeningID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepo) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetSummariesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.BookingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingSummary), args.Error(1)
}

type MockBalanceRepo struct {
	mock.Mock
	domain.BalanceRepository
}

func (m *MockBalanceRepo) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
