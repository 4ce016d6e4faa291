package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"

	"github.com/google/uuid"
)

type levyService struct {
	levyRepo   repository.LevyPaymentRepository
	userRepo   repository.UserRepository
	reportRepo repository.PaymentReportRepository
	emailSvc   EmailService
	now        func() time.Time
}

func NewLevyService(
	levyRepo repository.LevyPaymentRepository,
	userRepo repository.UserRepository,
	reportRepo repository.PaymentReportRepository,
	emailSvc EmailService,
) LevyService {
	return NewLevyServiceWithClock(levyRepo, userRepo, reportRepo, emailSvc, time.Now)
}

// NewLevyServiceWithClock allows tests to pin "now" for expiry-date arithmetic.
func NewLevyServiceWithClock(
	levyRepo repository.LevyPaymentRepository,
	userRepo repository.UserRepository,
	reportRepo repository.PaymentReportRepository,
	emailSvc EmailService,
	now func() time.Time,
) LevyService {
	return &levyService{
		levyRepo:   levyRepo,
		userRepo:   userRepo,
		reportRepo: reportRepo,
		emailSvc:   emailSvc,
		now:        now,
	}
}

func (s *levyService) SubmitPayment(ctx context.Context, ownerID int32, amountCents int32, method, transactionID, paymentDate string, roomIDs []int32, notes string) (*domain.LevyPayment, error) {
	if ownerID <= 0 {
		return nil, domain.NewValidationError("owner id is required")
	}
	if amountCents <= 0 {
		return nil, domain.NewValidationError("amount must be positive")
	}
	if method == "" {
		return nil, domain.NewValidationError("payment method is required")
	}
	if len(roomIDs) == 0 {
		return nil, domain.NewValidationError("at least one room is required")
	}
	if paymentDate == "" {
		paymentDate = s.now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", paymentDate); err != nil {
		return nil, domain.NewValidationError("payment date must be YYYY-MM-DD")
	}

	payment := &domain.LevyPayment{
		OwnerID:          ownerID,
		AmountCents:      amountCents,
		PaymentMethod:    method,
		TransactionID:    transactionID,
		PaymentReference: "LEVY-" + uuid.New().String(),
		PaymentDate:      paymentDate,
		Notes:            notes,
	}
	if err := s.levyRepo.Create(ctx, payment, roomIDs); err != nil {
		return nil, asWorkflowError("create levy payment", err)
	}
	return payment, nil
}

// ApprovePayment validates the request, then applies the whole approval workflow
// in one database transaction. A payment that is no longer pending yields a
// conflict and zero side effects; any mid-transaction failure rolls back fully.
func (s *levyService) ApprovePayment(ctx context.Context, adminID, paymentID int32, roomIDs []int32, notes string) error {
	logger.EnterMethod("levyService.ApprovePayment", "adminID", adminID, "paymentID", paymentID, "rooms", len(roomIDs))

	if err := validateDecisionInput(adminID, paymentID, roomIDs); err != nil {
		return err
	}

	payment, err := s.levyRepo.GetByID(ctx, paymentID)
	if err != nil {
		return asWorkflowError("load levy payment", err)
	}
	if payment.Status != domain.LevyPaymentStatusPending {
		return domain.NewConflictError("levy payment %d is already %s", paymentID, payment.Status)
	}

	owner, err := s.userRepo.GetByID(ctx, payment.OwnerID)
	if err != nil {
		return asWorkflowError("load payment owner", err)
	}

	approvalDate := s.now()
	expiryDate := approvalDate.AddDate(1, 0, 0)

	params := repository.ApproveLevyParams{
		PaymentID:    paymentID,
		AdminID:      adminID,
		RoomIDs:      roomIDs,
		Notes:        notes,
		ApprovalDate: approvalDate.Format("2006-01-02"),
		ExpiryDate:   expiryDate.Format("2006-01-02"),
		OwnerID:      owner.ID,
		OwnerMessage: fmt.Sprintf("Your levy payment of UGX %s covering %d room(s) has been approved for 1 YEAR.",
			formatCents(payment.AmountCents), len(roomIDs)),
		AuditDetails: fmt.Sprintf("Approved levy payment #%d covering %d room(s), valid until %s",
			paymentID, len(roomIDs), expiryDate.Format("2006-01-02")),
	}
	if err := s.levyRepo.Approve(ctx, params); err != nil {
		return asWorkflowError("approve levy payment", err)
	}

	// Email sits outside the transaction: delivery failure must not undo an
	// approval that is already durable.
	if err := s.emailSvc.SendLevyApprovalNotification(ctx, owner.Email, owner.Name, len(roomIDs), payment.AmountCents); err != nil {
		logger.Warn("Failed to send levy approval email", "paymentID", paymentID, "error", err)
	}

	logger.ExitMethod("levyService.ApprovePayment", "paymentID", paymentID)
	return nil
}

func (s *levyService) RejectPayment(ctx context.Context, adminID, paymentID int32, roomIDs []int32, reason domain.RejectionReason, notes string) error {
	logger.EnterMethod("levyService.RejectPayment", "adminID", adminID, "paymentID", paymentID, "reason", reason)

	if err := validateDecisionInput(adminID, paymentID, roomIDs); err != nil {
		return err
	}
	if !domain.ValidRejectionReason(reason) {
		return domain.NewValidationError("invalid rejection reason: %q", reason)
	}

	payment, err := s.levyRepo.GetByID(ctx, paymentID)
	if err != nil {
		return asWorkflowError("load levy payment", err)
	}
	if payment.Status != domain.LevyPaymentStatusPending {
		return domain.NewConflictError("levy payment %d is already %s", paymentID, payment.Status)
	}

	owner, err := s.userRepo.GetByID(ctx, payment.OwnerID)
	if err != nil {
		return asWorkflowError("load payment owner", err)
	}

	params := repository.RejectLevyParams{
		PaymentID:     paymentID,
		AdminID:       adminID,
		RoomIDs:       roomIDs,
		Notes:         fmt.Sprintf("%s: %s", reason, notes),
		RejectionDate: s.now().Format("2006-01-02"),
		OwnerID:       owner.ID,
		OwnerMessage: fmt.Sprintf("Your levy payment of UGX %s was rejected. Reason: %s.",
			formatCents(payment.AmountCents), reason),
		AuditDetails: fmt.Sprintf("Rejected levy payment #%d covering %d room(s), reason: %s",
			paymentID, len(roomIDs), reason),
	}
	if err := s.levyRepo.Reject(ctx, params); err != nil {
		return asWorkflowError("reject levy payment", err)
	}

	if err := s.emailSvc.SendLevyRejectionNotification(ctx, owner.Email, owner.Name, string(reason)); err != nil {
		logger.Warn("Failed to send levy rejection email", "paymentID", paymentID, "error", err)
	}

	logger.ExitMethod("levyService.RejectPayment", "paymentID", paymentID)
	return nil
}

func (s *levyService) ListPendingApprovals(ctx context.Context) ([]domain.PendingLevyApproval, error) {
	approvals, err := s.levyRepo.ListPendingApprovals(ctx)
	if err != nil {
		return nil, asWorkflowError("list pending approvals", err)
	}
	return approvals, nil
}

func (s *levyService) ListPayments(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.PaymentRecord, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	records, count, err := s.reportRepo.ListPayments(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, asWorkflowError("list payments", err)
	}
	return records, count, nil
}

func (s *levyService) GetPaymentStats(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentStats, error) {
	stats, err := s.reportRepo.GetPaymentStats(ctx, filter)
	if err != nil {
		return nil, asWorkflowError("get payment stats", err)
	}
	return stats, nil
}

func (s *levyService) GetRoomHistory(ctx context.Context, roomID int32) ([]domain.LevyPaymentHistory, error) {
	if roomID <= 0 {
		return nil, domain.NewValidationError("room id is required")
	}
	entries, err := s.levyRepo.ListHistoryByRoom(ctx, roomID)
	if err != nil {
		return nil, asWorkflowError("list room levy history", err)
	}
	return entries, nil
}

func validateDecisionInput(adminID, paymentID int32, roomIDs []int32) error {
	if adminID <= 0 {
		return domain.NewValidationError("admin id is required")
	}
	if paymentID <= 0 {
		return domain.NewValidationError("payment id is required")
	}
	if len(roomIDs) == 0 {
		return domain.NewValidationError("room ids must not be empty")
	}
	for _, id := range roomIDs {
		if id <= 0 {
			return domain.NewValidationError("room id %d is invalid", id)
		}
	}
	return nil
}

// asWorkflowError passes typed domain errors through untouched and wraps anything
// else (driver failures, rollbacks) as a persistence error.
func asWorkflowError(op string, err error) error {
	var ve *domain.ValidationError
	var nf *domain.NotFoundError
	var ce *domain.ConflictError
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &ce) {
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}

func formatCents(cents int32) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
