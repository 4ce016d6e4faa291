package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"

	"github.com/lib/pq"
)

type levyPaymentRepository struct {
	db *sql.DB
}

func NewLevyPaymentRepository(db *sql.DB) repository.LevyPaymentRepository {
	return &levyPaymentRepository{db: db}
}

func (r *levyPaymentRepository) Create(ctx context.Context, p *domain.LevyPayment, roomIDs []int32) error {
	logger.EnterMethod("levyPaymentRepository.Create", "ownerID", p.OwnerID, "rooms", len(roomIDs))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO room_levy_payments (owner_id, amount_cents, payment_method, transaction_id, payment_reference, status, payment_date, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, 'pending', $6, $7, $8) RETURNING id`
	now := time.Now().Format("2006-01-02")
	err = tx.QueryRowContext(ctx, query,
		p.OwnerID, p.AmountCents, p.PaymentMethod, p.TransactionID, p.PaymentReference, p.PaymentDate, p.Notes, now,
	).Scan(&p.ID)
	if err != nil {
		logger.ExitMethodWithError("levyPaymentRepository.Create", err)
		return err
	}
	p.Status = domain.LevyPaymentStatusPending

	// Link the covered rooms to this payment. Rooms already tied to another
	// undecided payment are not relinked; the count check catches that.
	result, err := tx.ExecContext(ctx,
		`UPDATE property_rooms SET levy_payment_id = $1 WHERE id = ANY($2) AND (levy_payment_id IS NULL OR levy_payment_status = 'pending')`,
		p.ID, pq.Array(roomIDs))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows != int64(len(roomIDs)) {
		return domain.NewConflictError("one or more rooms are not eligible for a new levy payment")
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("levyPaymentRepository.Create", "paymentID", p.ID)
	return nil
}

func (r *levyPaymentRepository) GetByID(ctx context.Context, id int32) (*domain.LevyPayment, error) {
	query := `SELECT id, owner_id, amount_cents, payment_method, transaction_id, payment_reference, status, payment_date, approved_by, approval_date, COALESCE(notes, ''), created_on
	          FROM room_levy_payments WHERE id = $1`
	var p domain.LevyPayment
	var paymentDate, createdOn time.Time
	var approvalDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.AmountCents, &p.PaymentMethod, &p.TransactionID, &p.PaymentReference,
		&p.Status, &paymentDate, &p.ApprovedBy, &approvalDate, &p.Notes, &createdOn,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Entity: "levy payment", ID: id}
	}
	if err != nil {
		return nil, err
	}
	p.PaymentDate = paymentDate.Format("2006-01-02")
	p.CreatedOn = createdOn.Format("2006-01-02")
	if approvalDate.Valid {
		d := approvalDate.Time.Format("2006-01-02")
		p.ApprovalDate = &d
	}
	return &p, nil
}

// Approve runs the whole approval workflow in one transaction. The payment row is
// locked first; every covered room must still reference the payment. Any failure
// rolls the entire transaction back so concurrent readers never observe a
// half-approved payment.
func (r *levyPaymentRepository) Approve(ctx context.Context, params repository.ApproveLevyParams) error {
	logger.EnterMethod("levyPaymentRepository.Approve", "paymentID", params.PaymentID, "adminID", params.AdminID, "rooms", len(params.RoomIDs))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, amountCents, err := r.lockPayment(ctx, tx, params.PaymentID)
	if err != nil {
		logger.ExitMethodWithError("levyPaymentRepository.Approve", err, "paymentID", params.PaymentID)
		return err
	}
	if status != domain.LevyPaymentStatusPending {
		err := domain.NewConflictError("levy payment %d is already %s", params.PaymentID, status)
		logger.ExitMethodWithError("levyPaymentRepository.Approve", err, "paymentID", params.PaymentID)
		return err
	}

	if err := r.verifyRoomsLinked(ctx, tx, params.PaymentID, params.RoomIDs); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE room_levy_payments SET status = 'completed', approved_by = $1, approval_date = $2, notes = $3 WHERE id = $4`,
		params.AdminID, params.ApprovalDate, params.Notes, params.PaymentID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE property_rooms SET levy_payment_status = 'approved', levy_expiry_date = $1, last_renewal_date = $2, renewal_count = renewal_count + 1
		 WHERE id = ANY($3) AND levy_payment_id = $4`,
		params.ExpiryDate, params.ApprovalDate, pq.Array(params.RoomIDs), params.PaymentID)
	if err != nil {
		return err
	}

	// One history row per room, carrying the payment amount and the new expiry.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO room_levy_payment_history (room_id, payment_id, payment_date, expiry_date, amount_cents, status, created_on)
		 SELECT id, $1, $2, $3, $4, 'active', $2 FROM property_rooms WHERE id = ANY($5)`,
		params.PaymentID, params.ApprovalDate, params.ExpiryDate, amountCents, pq.Array(params.RoomIDs))
	if err != nil {
		return err
	}

	if err := r.insertDecisionRecords(ctx, tx, decisionRecords{
		ownerID:      params.OwnerID,
		ownerMessage: params.OwnerMessage,
		noteType:     domain.NotificationTypeLevyApproval,
		noteTitle:    "Levy Payment Approved",
		adminID:      params.AdminID,
		actionType:   domain.AdminActionLevyApproval,
		paymentID:    params.PaymentID,
		details:      params.AuditDetails,
		date:         params.ApprovalDate,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("levyPaymentRepository.Approve", "paymentID", params.PaymentID)
	return nil
}

// Reject marks the payment failed and decouples the rooms without granting levy
// validity. No history rows are written; history only records successful renewals.
func (r *levyPaymentRepository) Reject(ctx context.Context, params repository.RejectLevyParams) error {
	logger.EnterMethod("levyPaymentRepository.Reject", "paymentID", params.PaymentID, "adminID", params.AdminID, "rooms", len(params.RoomIDs))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, _, err := r.lockPayment(ctx, tx, params.PaymentID)
	if err != nil {
		logger.ExitMethodWithError("levyPaymentRepository.Reject", err, "paymentID", params.PaymentID)
		return err
	}
	if status != domain.LevyPaymentStatusPending {
		err := domain.NewConflictError("levy payment %d is already %s", params.PaymentID, status)
		logger.ExitMethodWithError("levyPaymentRepository.Reject", err, "paymentID", params.PaymentID)
		return err
	}

	if err := r.verifyRoomsLinked(ctx, tx, params.PaymentID, params.RoomIDs); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE room_levy_payments SET status = 'failed', approved_by = $1, notes = $2 WHERE id = $3`,
		params.AdminID, params.Notes, params.PaymentID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE property_rooms SET levy_payment_status = 'pending', levy_expiry_date = NULL, levy_payment_id = NULL
		 WHERE id = ANY($1) AND levy_payment_id = $2`,
		pq.Array(params.RoomIDs), params.PaymentID)
	if err != nil {
		return err
	}

	if err := r.insertDecisionRecords(ctx, tx, decisionRecords{
		ownerID:      params.OwnerID,
		ownerMessage: params.OwnerMessage,
		noteType:     domain.NotificationTypeLevyRejection,
		noteTitle:    "Levy Payment Rejected",
		adminID:      params.AdminID,
		actionType:   domain.AdminActionLevyRejection,
		paymentID:    params.PaymentID,
		details:      params.AuditDetails,
		date:         params.RejectionDate,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("levyPaymentRepository.Reject", "paymentID", params.PaymentID)
	return nil
}

// lockPayment takes a row lock on the payment so two admins deciding the same
// payment serialize; the loser sees the updated status and gets a conflict.
func (r *levyPaymentRepository) lockPayment(ctx context.Context, tx *sql.Tx, paymentID int32) (domain.LevyPaymentStatus, int32, error) {
	var status domain.LevyPaymentStatus
	var amountCents int32
	err := tx.QueryRowContext(ctx,
		`SELECT status, amount_cents FROM room_levy_payments WHERE id = $1 FOR UPDATE`,
		paymentID).Scan(&status, &amountCents)
	if err == sql.ErrNoRows {
		return "", 0, &domain.NotFoundError{Entity: "levy payment", ID: paymentID}
	}
	if err != nil {
		return "", 0, err
	}
	return status, amountCents, nil
}

// verifyRoomsLinked ensures every requested room currently references the payment.
// All-or-nothing: a single stray id fails the whole decision.
func (r *levyPaymentRepository) verifyRoomsLinked(ctx context.Context, tx *sql.Tx, paymentID int32, roomIDs []int32) error {
	var linked int32
	err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM property_rooms WHERE id = ANY($1) AND levy_payment_id = $2`,
		pq.Array(roomIDs), paymentID).Scan(&linked)
	if err != nil {
		return err
	}
	if linked != int32(len(roomIDs)) {
		return &domain.NotFoundError{Entity: "room for levy payment", ID: paymentID}
	}
	return nil
}

type decisionRecords struct {
	ownerID      int32
	ownerMessage string
	noteType     domain.NotificationType
	noteTitle    string
	adminID      int32
	actionType   domain.AdminActionType
	paymentID    int32
	details      string
	date         string
}

func (r *levyPaymentRepository) insertDecisionRecords(ctx context.Context, tx *sql.Tx, rec decisionRecords) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (user_id, title, message, type, is_read, created_on) VALUES ($1, $2, $3, $4, FALSE, $5)`,
		rec.ownerID, rec.noteTitle, rec.ownerMessage, rec.noteType, rec.date)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO admin_actions (admin_id, action_type, target_id, target_type, details, created_on) VALUES ($1, $2, $3, 'levy_payment', $4, $5)`,
		rec.adminID, rec.actionType, rec.paymentID, rec.details, rec.date)
	return err
}

func (r *levyPaymentRepository) ListPendingApprovals(ctx context.Context) ([]domain.PendingLevyApproval, error) {
	query := `SELECT p.id, p.owner_id, p.amount_cents, p.payment_method, p.transaction_id, p.payment_reference, p.status, p.payment_date, COALESCE(p.notes, ''), u.name,
	                 string_agg(DISTINCT prop.name, ', '),
	                 array_agg(r.id ORDER BY r.room_number), array_agg(r.room_number ORDER BY r.room_number)
	          FROM room_levy_payments p
	          JOIN users u ON u.id = p.owner_id
	          JOIN property_rooms r ON r.levy_payment_id = p.id
	          JOIN property prop ON prop.id = r.property_id
	          WHERE p.status = 'pending'
	          GROUP BY p.id, u.name
	          ORDER BY p.payment_date ASC, p.id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approvals := []domain.PendingLevyApproval{}
	for rows.Next() {
		var a domain.PendingLevyApproval
		var paymentDate time.Time
		var roomIDs pq.Int32Array
		var roomNumbers pq.StringArray
		if err := rows.Scan(
			&a.Payment.ID, &a.Payment.OwnerID, &a.Payment.AmountCents, &a.Payment.PaymentMethod,
			&a.Payment.TransactionID, &a.Payment.PaymentReference, &a.Payment.Status, &paymentDate,
			&a.Payment.Notes, &a.OwnerName, &a.PropertyName, &roomIDs, &roomNumbers,
		); err != nil {
			return nil, err
		}
		a.Payment.PaymentDate = paymentDate.Format("2006-01-02")
		a.RoomIDs = roomIDs
		a.RoomNumbers = roomNumbers
		approvals = append(approvals, a)
	}
	return approvals, rows.Err()
}

func (r *levyPaymentRepository) ListHistoryByRoom(ctx context.Context, roomID int32) ([]domain.LevyPaymentHistory, error) {
	query := `SELECT id, room_id, payment_id, payment_date, expiry_date, amount_cents, status, created_on
	          FROM room_levy_payment_history WHERE room_id = $1 ORDER BY payment_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.LevyPaymentHistory{}
	for rows.Next() {
		var h domain.LevyPaymentHistory
		var paymentDate, expiryDate, createdOn time.Time
		if err := rows.Scan(&h.ID, &h.RoomID, &h.PaymentID, &paymentDate, &expiryDate, &h.AmountCents, &h.Status, &createdOn); err != nil {
			return nil, err
		}
		h.PaymentDate = paymentDate.Format("2006-01-02")
		h.ExpiryDate = expiryDate.Format("2006-01-02")
		h.CreatedOn = createdOn.Format("2006-01-02")
		entries = append(entries, h)
	}
	return entries, rows.Err()
}
