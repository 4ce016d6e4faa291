package handlers

import (
	"context"

	"hostelhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLevyService
type MockLevyService struct {
	mock.Mock
}

func (m *MockLevyService) SubmitPayment(ctx context.Context, ownerID int32, amountCents int32, method, transactionID, paymentDate string, roomIDs []int32, notes string) (*domain.LevyPayment, error) {
	args := m.Called(ctx, ownerID, amountCents, method, transactionID, paymentDate, roomIDs, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevyPayment), args.Error(1)
}

func (m *MockLevyService) ApprovePayment(ctx context.Context, adminID, paymentID int32, roomIDs []int32, notes string) error {
	args := m.Called(ctx, adminID, paymentID, roomIDs, notes)
	return args.Error(0)
}

func (m *MockLevyService) RejectPayment(ctx context.Context, adminID, paymentID int32, roomIDs []int32, reason domain.RejectionReason, notes string) error {
	args := m.Called(ctx, adminID, paymentID, roomIDs, reason, notes)
	return args.Error(0)
}

func (m *MockLevyService) ListPendingApprovals(ctx context.Context) ([]domain.PendingLevyApproval, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PendingLevyApproval), args.Error(1)
}

func (m *MockLevyService) ListPayments(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.PaymentRecord, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.PaymentRecord), args.Get(1).(int32), args.Error(2)
}

func (m *MockLevyService) GetPaymentStats(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentStats), args.Error(1)
}

func (m *MockLevyService) GetRoomHistory(ctx context.Context, roomID int32) ([]domain.LevyPaymentHistory, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]domain.LevyPaymentHistory), args.Error(1)
}
