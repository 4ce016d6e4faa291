package service

import (
	"context"

	"hostelhub-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh, user
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

// LevyService owns the levy payment lifecycle: owner submission, the admin
// approval/rejection workflow, and the administrative review projections. Every
// caller goes through this one service so the decision logic lives in one place.
type LevyService interface {
	SubmitPayment(ctx context.Context, ownerID int32, amountCents int32, method, transactionID, paymentDate string, roomIDs []int32, notes string) (*domain.LevyPayment, error)
	ApprovePayment(ctx context.Context, adminID, paymentID int32, roomIDs []int32, notes string) error
	RejectPayment(ctx context.Context, adminID, paymentID int32, roomIDs []int32, reason domain.RejectionReason, notes string) error

	ListPendingApprovals(ctx context.Context) ([]domain.PendingLevyApproval, error)
	ListPayments(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.PaymentRecord, int32, error)
	GetPaymentStats(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentStats, error)
	GetRoomHistory(ctx context.Context, roomID int32) ([]domain.LevyPaymentHistory, error)
}

type RoomService interface {
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
	ListOwnerRooms(ctx context.Context, ownerID int32) ([]domain.Property, map[int32][]domain.Room, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type AuditService interface {
	ListAdminActions(ctx context.Context, page, pageSize int32) ([]domain.AdminAction, int32, error)
}

type EmailService interface {
	SendLevyApprovalNotification(ctx context.Context, email, name string, roomCount int, amountCents int32) error
	SendLevyRejectionNotification(ctx context.Context, email, name, reason string) error
	SendLevyExpiryReminder(ctx context.Context, email, name, propertyName, roomNumber, expiryDate string) error
}
