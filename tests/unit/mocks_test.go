package unit

import (
	"context"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Room, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ListByPayment(ctx context.Context, paymentID int32) ([]domain.Room, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ExpireLevies(ctx context.Context, asOf string) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRoomRepo) ListExpiringLevies(ctx context.Context, from, to string) ([]domain.ExpiringLevy, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.ExpiringLevy), args.Error(1)
}

// MockLevyPaymentRepo
type MockLevyPaymentRepo struct {
	mock.Mock
}

func (m *MockLevyPaymentRepo) Create(ctx context.Context, payment *domain.LevyPayment, roomIDs []int32) error {
	args := m.Called(ctx, payment, roomIDs)
	return args.Error(0)
}
func (m *MockLevyPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.LevyPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevyPayment), args.Error(1)
}
func (m *MockLevyPaymentRepo) Approve(ctx context.Context, params repository.ApproveLevyParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
func (m *MockLevyPaymentRepo) Reject(ctx context.Context, params repository.RejectLevyParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
func (m *MockLevyPaymentRepo) ListPendingApprovals(ctx context.Context) ([]domain.PendingLevyApproval, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PendingLevyApproval), args.Error(1)
}
func (m *MockLevyPaymentRepo) ListHistoryByRoom(ctx context.Context, roomID int32) ([]domain.LevyPaymentHistory, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]domain.LevyPaymentHistory), args.Error(1)
}

// MockPaymentReportRepo
type MockPaymentReportRepo struct {
	mock.Mock
}

func (m *MockPaymentReportRepo) ListPayments(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.PaymentRecord, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.PaymentRecord), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentReportRepo) GetPaymentStats(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentStats), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAdminActionRepo
type MockAdminActionRepo struct {
	mock.Mock
}

func (m *MockAdminActionRepo) Create(ctx context.Context, action *domain.AdminAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}
func (m *MockAdminActionRepo) List(ctx context.Context, limit, offset int32) ([]domain.AdminAction, int32, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.AdminAction), args.Get(1).(int32), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLevyApprovalNotification(ctx context.Context, email, name string, roomCount int, amountCents int32) error {
	args := m.Called(ctx, email, name, roomCount, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendLevyRejectionNotification(ctx context.Context, email, name, reason string) error {
	args := m.Called(ctx, email, name, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendLevyExpiryReminder(ctx context.Context, email, name, propertyName, roomNumber, expiryDate string) error {
	args := m.Called(ctx, email, name, propertyName, roomNumber, expiryDate)
	return args.Error(0)
}
