package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type paymentReportRepository struct {
	db *sql.DB
}

func NewPaymentReportRepository(db *sql.DB) repository.PaymentReportRepository {
	return &paymentReportRepository{db: db}
}

// combinedPayments unifies booking and levy payments for administrative review.
const combinedPayments = `
	SELECT bp.id, 'booking' AS kind, bp.tenant_id AS payer_id, u.name AS payer_name,
	       bp.amount_cents, bp.payment_method, bp.transaction_id, bp.status, bp.payment_date
	FROM booking_payments bp JOIN users u ON u.id = bp.tenant_id
	UNION ALL
	SELECT lp.id, 'levy' AS kind, lp.owner_id AS payer_id, u.name AS payer_name,
	       lp.amount_cents, lp.payment_method, lp.transaction_id, lp.status, lp.payment_date
	FROM room_levy_payments lp JOIN users u ON u.id = lp.owner_id`

// buildFilter turns the optional filter dimensions into a WHERE clause with bound
// placeholders, numbered from startIdx.
func buildFilter(filter domain.PaymentFilter, startIdx int) (string, []any) {
	conditions := []string{}
	args := []any{}
	idx := startIdx
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.Method != "" {
		conditions = append(conditions, fmt.Sprintf("payment_method = $%d", idx))
		args = append(args, filter.Method)
		idx++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("payment_date >= $%d", idx))
		args = append(args, filter.DateFrom)
		idx++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("payment_date <= $%d", idx))
		args = append(args, filter.DateTo)
		idx++
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *paymentReportRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter, page, pageSize int32) ([]domain.PaymentRecord, int32, error) {
	where, args := buildFilter(filter, 1)

	var count int32
	countQuery := `SELECT count(*) FROM (` + combinedPayments + `) AS payments` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(
		`SELECT id, kind, payer_id, payer_name, amount_cents, payment_method, transaction_id, status, payment_date
		 FROM (`+combinedPayments+`) AS payments%s
		 ORDER BY payment_date DESC, kind, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageSize, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := []domain.PaymentRecord{}
	for rows.Next() {
		var rec domain.PaymentRecord
		var paymentDate time.Time
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.PayerID, &rec.PayerName, &rec.AmountCents,
			&rec.PaymentMethod, &rec.TransactionID, &rec.Status, &paymentDate); err != nil {
			return nil, 0, err
		}
		rec.PaymentDate = paymentDate.Format("2006-01-02")
		records = append(records, rec)
	}
	return records, count, rows.Err()
}

// GetPaymentStats aggregates the combined listing. Revenue counts completed
// payments only, for both payment kinds. Empty result sets yield all zeros.
func (r *paymentReportRepository) GetPaymentStats(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentStats, error) {
	where, args := buildFilter(filter, 1)
	query := `SELECT count(*),
	                 count(*) FILTER (WHERE status = 'completed'),
	                 count(*) FILTER (WHERE status = 'pending'),
	                 count(*) FILTER (WHERE status = 'failed'),
	                 COALESCE(SUM(amount_cents) FILTER (WHERE status = 'completed'), 0)
	          FROM (` + combinedPayments + `) AS payments` + where

	var stats domain.PaymentStats
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalCount, &stats.CompletedCount, &stats.PendingCount, &stats.FailedCount, &stats.RevenueCents)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
