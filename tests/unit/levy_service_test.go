package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
	"hostelhub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fixedClock(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t }
}

func newLevyServiceForTest(levyRepo *MockLevyPaymentRepo, userRepo *MockUserRepo, reportRepo *MockPaymentReportRepo, emailSvc *MockEmailService, today string) service.LevyService {
	return service.NewLevyServiceWithClock(levyRepo, userRepo, reportRepo, emailSvc, fixedClock(today))
}

func TestLevyService_ApprovePayment(t *testing.T) {
	ctx := context.Background()

	pending := &domain.LevyPayment{
		ID:          42,
		OwnerID:     5,
		AmountCents: 500000,
		Status:      domain.LevyPaymentStatusPending,
	}
	owner := &domain.User{ID: 5, Email: "owner@test.com", Name: "Owner", Role: domain.UserRoleOwner}

	t.Run("Success", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := newLevyServiceForTest(levyRepo, userRepo, new(MockPaymentReportRepo), emailSvc, "2026-03-10")

		levyRepo.On("GetByID", ctx, int32(42)).Return(pending, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(owner, nil)
		levyRepo.On("Approve", ctx, mock.MatchedBy(func(p repository.ApproveLevyParams) bool {
			return p.PaymentID == 42 &&
				p.AdminID == 7 &&
				len(p.RoomIDs) == 2 &&
				p.ApprovalDate == "2026-03-10" &&
				p.ExpiryDate == "2027-03-10" &&
				p.OwnerID == 5
		})).Return(nil)
		emailSvc.On("SendLevyApprovalNotification", ctx, "owner@test.com", "Owner", 2, int32(500000)).Return(nil)

		err := svc.ApprovePayment(ctx, 7, 42, []int32{101, 102}, "ok")
		assert.NoError(t, err)
		levyRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Expiry Crosses Leap Day", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := newLevyServiceForTest(levyRepo, userRepo, new(MockPaymentReportRepo), emailSvc, "2027-06-01")

		levyRepo.On("GetByID", ctx, int32(42)).Return(pending, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(owner, nil)
		levyRepo.On("Approve", ctx, mock.MatchedBy(func(p repository.ApproveLevyParams) bool {
			// 2028 is a leap year; one calendar year later is still June 1st.
			return p.ExpiryDate == "2028-06-01"
		})).Return(nil)
		emailSvc.On("SendLevyApprovalNotification", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err := svc.ApprovePayment(ctx, 7, 42, []int32{101}, "")
		assert.NoError(t, err)
	})

	t.Run("Already Decided", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		svc := newLevyServiceForTest(levyRepo, new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		decided := &domain.LevyPayment{ID: 42, OwnerID: 5, Status: domain.LevyPaymentStatusCompleted}
		levyRepo.On("GetByID", ctx, int32(42)).Return(decided, nil)

		err := svc.ApprovePayment(ctx, 7, 42, []int32{101}, "")
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		levyRepo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := newLevyServiceForTest(new(MockLevyPaymentRepo), new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		var validation *domain.ValidationError
		assert.ErrorAs(t, svc.ApprovePayment(ctx, 7, 0, []int32{101}, ""), &validation)
		assert.ErrorAs(t, svc.ApprovePayment(ctx, 7, 42, nil, ""), &validation)
		assert.ErrorAs(t, svc.ApprovePayment(ctx, 0, 42, []int32{101}, ""), &validation)
	})

	t.Run("Not Found", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		svc := newLevyServiceForTest(levyRepo, new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		levyRepo.On("GetByID", ctx, int32(99)).Return(nil, &domain.NotFoundError{Entity: "levy payment", ID: 99})

		err := svc.ApprovePayment(ctx, 7, 99, []int32{101}, "")
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("Transaction Failure Wrapped", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		userRepo := new(MockUserRepo)
		svc := newLevyServiceForTest(levyRepo, userRepo, new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		levyRepo.On("GetByID", ctx, int32(42)).Return(pending, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(owner, nil)
		levyRepo.On("Approve", ctx, mock.Anything).Return(errors.New("connection reset"))

		err := svc.ApprovePayment(ctx, 7, 42, []int32{101}, "")
		var persistence *domain.PersistenceError
		assert.ErrorAs(t, err, &persistence)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("Email Failure Does Not Fail Approval", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := newLevyServiceForTest(levyRepo, userRepo, new(MockPaymentReportRepo), emailSvc, "2026-03-10")

		levyRepo.On("GetByID", ctx, int32(42)).Return(pending, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(owner, nil)
		levyRepo.On("Approve", ctx, mock.Anything).Return(nil)
		emailSvc.On("SendLevyApprovalNotification", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sendgrid down"))

		err := svc.ApprovePayment(ctx, 7, 42, []int32{101}, "")
		assert.NoError(t, err)
	})
}

func TestLevyService_RejectPayment(t *testing.T) {
	ctx := context.Background()

	pending := &domain.LevyPayment{
		ID:          43,
		OwnerID:     5,
		AmountCents: 250000,
		Status:      domain.LevyPaymentStatusPending,
	}
	owner := &domain.User{ID: 5, Email: "owner@test.com", Name: "Owner"}

	t.Run("Success", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := newLevyServiceForTest(levyRepo, userRepo, new(MockPaymentReportRepo), emailSvc, "2026-03-10")

		levyRepo.On("GetByID", ctx, int32(43)).Return(pending, nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(owner, nil)
		levyRepo.On("Reject", ctx, mock.MatchedBy(func(p repository.RejectLevyParams) bool {
			return p.PaymentID == 43 &&
				p.AdminID == 7 &&
				p.Notes == "invalid_payment: doc fake" &&
				p.RejectionDate == "2026-03-10" &&
				p.OwnerID == 5
		})).Return(nil)
		emailSvc.On("SendLevyRejectionNotification", ctx, "owner@test.com", "Owner", "invalid_payment").Return(nil)

		err := svc.RejectPayment(ctx, 7, 43, []int32{201}, domain.RejectionReasonInvalidPayment, "doc fake")
		assert.NoError(t, err)
		levyRepo.AssertExpectations(t)
	})

	t.Run("Invalid Reason", func(t *testing.T) {
		svc := newLevyServiceForTest(new(MockLevyPaymentRepo), new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		err := svc.RejectPayment(ctx, 7, 43, []int32{201}, "because", "")
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("Already Decided", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		svc := newLevyServiceForTest(levyRepo, new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		failed := &domain.LevyPayment{ID: 43, OwnerID: 5, Status: domain.LevyPaymentStatusFailed}
		levyRepo.On("GetByID", ctx, int32(43)).Return(failed, nil)

		err := svc.RejectPayment(ctx, 7, 43, []int32{201}, domain.RejectionReasonOther, "again")
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		levyRepo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything)
	})
}

func TestLevyService_SubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		levyRepo := new(MockLevyPaymentRepo)
		svc := newLevyServiceForTest(levyRepo, new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		levyRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.LevyPayment) bool {
			return p.OwnerID == 5 && p.AmountCents == 500000 && p.PaymentDate == "2026-03-10" && p.PaymentReference != ""
		}), []int32{101, 102}).Return(nil)

		payment, err := svc.SubmitPayment(ctx, 5, 500000, "mobile_money", "MM-123", "", []int32{101, 102}, "")
		assert.NoError(t, err)
		assert.NotNil(t, payment)
		assert.Contains(t, payment.PaymentReference, "LEVY-")
	})

	t.Run("Validation", func(t *testing.T) {
		svc := newLevyServiceForTest(new(MockLevyPaymentRepo), new(MockUserRepo), new(MockPaymentReportRepo), new(MockEmailService), "2026-03-10")

		var validation *domain.ValidationError
		_, err := svc.SubmitPayment(ctx, 5, 0, "cash", "", "", []int32{101}, "")
		assert.ErrorAs(t, err, &validation)
		_, err = svc.SubmitPayment(ctx, 5, 1000, "cash", "", "", nil, "")
		assert.ErrorAs(t, err, &validation)
		_, err = svc.SubmitPayment(ctx, 5, 1000, "cash", "", "not-a-date", []int32{101}, "")
		assert.ErrorAs(t, err, &validation)
	})
}

func TestLevyService_GetPaymentStats(t *testing.T) {
	ctx := context.Background()

	reportRepo := new(MockPaymentReportRepo)
	svc := newLevyServiceForTest(new(MockLevyPaymentRepo), new(MockUserRepo), reportRepo, new(MockEmailService), "2026-03-10")

	filter := domain.PaymentFilter{Status: "", Method: "mobile_money"}
	reportRepo.On("GetPaymentStats", ctx, filter).Return(&domain.PaymentStats{
		TotalCount:     6,
		CompletedCount: 3,
		PendingCount:   2,
		FailedCount:    1,
		RevenueCents:   30000,
	}, nil)

	stats, err := svc.GetPaymentStats(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, int32(6), stats.TotalCount)
	assert.Equal(t, int64(30000), stats.RevenueCents)
}

func TestLevyService_ListPayments_Paging(t *testing.T) {
	ctx := context.Background()

	reportRepo := new(MockPaymentReportRepo)
	svc := newLevyServiceForTest(new(MockLevyPaymentRepo), new(MockUserRepo), reportRepo, new(MockEmailService), "2026-03-10")

	// Out-of-range paging values fall back to defaults.
	reportRepo.On("ListPayments", ctx, domain.PaymentFilter{}, int32(1), int32(20)).Return([]domain.PaymentRecord{}, int32(0), nil)

	records, count, err := svc.ListPayments(ctx, domain.PaymentFilter{}, -3, 1000)
	assert.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(0), count)
}
