package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type adminActionRepository struct {
	db *sql.DB
}

func NewAdminActionRepository(db *sql.DB) repository.AdminActionRepository {
	return &adminActionRepository{db: db}
}

func (r *adminActionRepository) Create(ctx context.Context, a *domain.AdminAction) error {
	query := `INSERT INTO admin_actions (admin_id, action_type, target_id, target_type, details, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, a.AdminID, a.ActionType, a.TargetID, a.TargetType, a.Details, now).Scan(&a.ID)
}

func (r *adminActionRepository) List(ctx context.Context, limit, offset int32) ([]domain.AdminAction, int32, error) {
	query := `SELECT id, admin_id, action_type, target_id, target_type, details, created_on
	          FROM admin_actions ORDER BY created_on DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM admin_actions`).Scan(&count); err != nil {
		return nil, 0, err
	}

	actions := []domain.AdminAction{}
	for rows.Next() {
		var a domain.AdminAction
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.AdminID, &a.ActionType, &a.TargetID, &a.TargetType, &a.Details, &createdOn); err != nil {
			return nil, 0, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		actions = append(actions, a)
	}
	return actions, count, rows.Err()
}
