package postgres

import (
	"database/sql"

	"hostelhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PropertyRepository
	repository.RoomRepository
	repository.LevyPaymentRepository
	repository.PaymentReportRepository
	repository.NotificationRepository
	repository.AdminActionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		PropertyRepository:      NewPropertyRepository(db),
		RoomRepository:          NewRoomRepository(db),
		LevyPaymentRepository:   NewLevyPaymentRepository(db),
		PaymentReportRepository: NewPaymentReportRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
		AdminActionRepository:   NewAdminActionRepository(db),
	}
}
