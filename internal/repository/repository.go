package repository

import (
	"context"

	"hostelhub-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PropertyRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Room, error)
	ListByPayment(ctx context.Context, paymentID int32) ([]domain.Room, error)

	// ExpireLevies reverts rooms whose levy validity lapsed on or before asOf
	// (YYYY-MM-DD) back to pending. Returns the number of rooms reverted.
	ExpireLevies(ctx context.Context, asOf string) (int64, error)

	// ListExpiringLevies returns approved rooms whose levy expires within
	// [from, to], joined with owner and property details for reminders.
	ListExpiringLevies(ctx context.Context, from, to string) ([]domain.ExpiringLevy, error)
}

// ApproveLevyParams carries everything the approval transaction writes. The service
// layer computes dates and messages; the repository only persists them atomically.
type ApproveLevyParams struct {
	PaymentID    int32
	AdminID      int32
	RoomIDs      []int32
	Notes        string
	ApprovalDate string // YYYY-MM-DD
	ExpiryDate   string // YYYY-MM-DD, one year after approval
	OwnerID      int32
	OwnerMessage string
	AuditDetails string
}

// RejectLevyParams mirrors ApproveLevyParams for the rejection transaction. Rooms
// are decoupled from the payment and acquire no levy validity.
type RejectLevyParams struct {
	PaymentID     int32
	AdminID       int32
	RoomIDs       []int32
	Notes         string // already prefixed with the rejection reason
	RejectionDate string // YYYY-MM-DD
	OwnerID       int32
	OwnerMessage  string
	AuditDetails  string
}

type LevyPaymentRepository interface {
	Create(ctx context.Context, payment *domain.LevyPayment, roomIDs []int32) error
	GetByID(ctx context.Context, id int32) (*domain.LevyPayment, error)

	// Approve applies all approval effects in one transaction: payment completed,
	// rooms approved with new expiry, one history row per room, owner notification,
	// admin audit row. The payment row is locked and must still be pending;
	// a decided payment yields a domain.ConflictError and no side effects.
	Approve(ctx context.Context, params ApproveLevyParams) error

	// Reject is the symmetric inverse without history rows: payment failed, rooms
	// back to pending with cleared link and expiry, owner notification, audit row.
	Reject(ctx context.Context, params RejectLevyParams) error

	ListPendingApprovals(ctx context.Context) ([]domain.PendingLevyApproval, error)
	ListHistoryByRoom(ctx context.Context, roomID int32) ([]domain.LevyPaymentHistory, error)
}

type PaymentReportRepository interface {
	ListPayments(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.PaymentRecord, int32, error)
	GetPaymentStats(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentStats, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type AdminActionRepository interface {
	Create(ctx context.Context, action *domain.AdminAction) error
	List(ctx context.Context, limit, offset int32) ([]domain.AdminAction, int32, error)
}
