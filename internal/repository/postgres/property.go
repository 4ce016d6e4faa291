package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	query := `SELECT id, owner_id, name, COALESCE(address, ''), COALESCE(district, ''), created_on
	          FROM property WHERE id = $1`
	var p domain.Property
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.District, &createdOn)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Entity: "property", ID: id}
	}
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format("2006-01-02")
	return &p, nil
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	query := `SELECT id, owner_id, name, COALESCE(address, ''), COALESCE(district, ''), created_on
	          FROM property WHERE owner_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		var p domain.Property
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.District, &createdOn); err != nil {
			return nil, err
		}
		p.CreatedOn = createdOn.Format("2006-01-02")
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
