package repos

import (
	"context"
	"testing"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var reportColumns = []string{"id", "kind", "payer_id", "payer_name", "amount_cents", "payment_method", "transaction_id", "status", "payment_date"}

func TestPaymentReportRepository_ListPayments(t *testing.T) {
	ctx := context.Background()

	t.Run("Combined Booking And Levy Rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPaymentReportRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT id, kind, payer_id, payer_name, amount_cents").
			WithArgs(int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(reportColumns).
				AddRow(11, "levy", 5, "Okello James", 500000, "mobile_money", "MM-991", "completed", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)).
				AddRow(3, "booking", 9, "Nansubuga Ruth", 120000, "bank_transfer", "BT-104", "pending", time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)))

		records, count, err := repo.ListPayments(ctx, domain.PaymentFilter{}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), count)
		assert.Len(t, records, 2)
		assert.Equal(t, domain.PaymentKindLevy, records[0].Kind)
		assert.Equal(t, "2026-03-10", records[0].PaymentDate)
		assert.Equal(t, domain.PaymentKindBooking, records[1].Kind)
	})

	t.Run("Filters Bind In Order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPaymentReportRepository(db)

		filter := domain.PaymentFilter{
			Status:   "completed",
			Method:   "mobile_money",
			DateFrom: "2026-01-01",
			DateTo:   "2026-03-31",
		}
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(").
			WithArgs("completed", "mobile_money", "2026-01-01", "2026-03-31").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT id, kind, payer_id, payer_name, amount_cents").
			WithArgs("completed", "mobile_money", "2026-01-01", "2026-03-31", int32(10), int32(10)).
			WillReturnRows(sqlmock.NewRows(reportColumns).
				AddRow(11, "levy", 5, "Okello James", 500000, "mobile_money", "MM-991", "completed", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))

		records, count, err := repo.ListPayments(ctx, filter, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), count)
		assert.Len(t, records, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Result", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPaymentReportRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT id, kind, payer_id, payer_name, amount_cents").
			WillReturnRows(sqlmock.NewRows(reportColumns))

		records, count, err := repo.ListPayments(ctx, domain.PaymentFilter{}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
		assert.Empty(t, records)
	})
}

func TestPaymentReportRepository_GetPaymentStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Revenue Counts Completed Only", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPaymentReportRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\),").
			WillReturnRows(sqlmock.NewRows([]string{"total", "completed", "pending", "failed", "revenue"}).
				AddRow(6, 3, 2, 1, 750000))

		stats, err := repo.GetPaymentStats(ctx, domain.PaymentFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int32(6), stats.TotalCount)
		assert.Equal(t, int32(3), stats.CompletedCount)
		assert.Equal(t, int32(2), stats.PendingCount)
		assert.Equal(t, int32(1), stats.FailedCount)
		assert.Equal(t, int64(750000), stats.RevenueCents)
	})

	t.Run("No Payments Yields Zeros", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPaymentReportRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\),").
			WillReturnRows(sqlmock.NewRows([]string{"total", "completed", "pending", "failed", "revenue"}).
				AddRow(0, 0, 0, 0, 0))

		stats, err := repo.GetPaymentStats(ctx, domain.PaymentFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int32(0), stats.TotalCount)
		assert.Equal(t, int64(0), stats.RevenueCents)
	})

	t.Run("Filter Binds Status", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPaymentReportRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\),").
			WithArgs("failed").
			WillReturnRows(sqlmock.NewRows([]string{"total", "completed", "pending", "failed", "revenue"}).
				AddRow(1, 0, 0, 1, 0))

		stats, err := repo.GetPaymentStats(ctx, domain.PaymentFilter{Status: "failed"})
		assert.NoError(t, err)
		assert.Equal(t, int32(1), stats.FailedCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
