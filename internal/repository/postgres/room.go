package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, property_id, room_number, capacity, current_occupancy, gender, status, levy_payment_status, levy_payment_id, levy_expiry_date, last_renewal_date, renewal_count, created_on`

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM property_rooms WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	room, err := scanRoom(row.Scan)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Entity: "room", ID: id}
	}
	return room, err
}

func (r *roomRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM property_rooms WHERE property_id = $1 ORDER BY room_number ASC`
	return r.queryRooms(ctx, query, propertyID)
}

func (r *roomRepository) ListByPayment(ctx context.Context, paymentID int32) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM property_rooms WHERE levy_payment_id = $1 ORDER BY room_number ASC`
	return r.queryRooms(ctx, query, paymentID)
}

func (r *roomRepository) queryRooms(ctx context.Context, query string, arg any) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *room)
	}
	return result, rows.Err()
}

func scanRoom(scan func(dest ...any) error) (*domain.Room, error) {
	var room domain.Room
	var expiry, renewal sql.NullTime
	var createdOn time.Time
	err := scan(
		&room.ID, &room.PropertyID, &room.RoomNumber, &room.Capacity, &room.CurrentOccupancy,
		&room.Gender, &room.Status, &room.LevyPaymentStatus, &room.LevyPaymentID,
		&expiry, &renewal, &room.RenewalCount, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	if expiry.Valid {
		d := expiry.Time.Format("2006-01-02")
		room.LevyExpiryDate = &d
	}
	if renewal.Valid {
		d := renewal.Time.Format("2006-01-02")
		room.LastRenewalDate = &d
	}
	room.CreatedOn = createdOn.Format("2006-01-02")
	return &room, nil
}

// ExpireLevies reverts rooms whose levy validity has lapsed. The payment link is
// kept for renewal history; only the approved status and expiry are withdrawn.
func (r *roomRepository) ExpireLevies(ctx context.Context, asOf string) (int64, error) {
	logger.DatabaseCall("UPDATE", "property_rooms", "asOf", asOf)
	result, err := r.db.ExecContext(ctx,
		`UPDATE property_rooms SET levy_payment_status = 'pending', levy_expiry_date = NULL
		 WHERE levy_payment_status = 'approved' AND levy_expiry_date < $1`, asOf)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return 0, err
	}
	rows, err := result.RowsAffected()
	logger.DatabaseResult("UPDATE", rows, err)
	return rows, err
}

func (r *roomRepository) ListExpiringLevies(ctx context.Context, from, to string) ([]domain.ExpiringLevy, error) {
	query := `SELECT r.id, r.room_number, prop.name, u.id, u.name, u.email, r.levy_expiry_date
	          FROM property_rooms r
	          JOIN property prop ON prop.id = r.property_id
	          JOIN users u ON u.id = prop.owner_id
	          WHERE r.levy_payment_status = 'approved' AND r.levy_expiry_date BETWEEN $1 AND $2
	          ORDER BY r.levy_expiry_date ASC, r.id ASC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ExpiringLevy{}
	for rows.Next() {
		var e domain.ExpiringLevy
		var expiry time.Time
		if err := rows.Scan(&e.RoomID, &e.RoomNumber, &e.PropertyName, &e.OwnerID, &e.OwnerName, &e.OwnerEmail, &expiry); err != nil {
			return nil, err
		}
		e.ExpiryDate = expiry.Format("2006-01-02")
		result = append(result, e)
	}
	return result, rows.Err()
}
