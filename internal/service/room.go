package service

import (
	"context"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type roomService struct {
	roomRepo     repository.RoomRepository
	propertyRepo repository.PropertyRepository
}

func NewRoomService(roomRepo repository.RoomRepository, propertyRepo repository.PropertyRepository) RoomService {
	return &roomService{
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *roomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("room id is required")
	}
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asWorkflowError("get room", err)
	}
	return room, nil
}

// ListOwnerRooms returns the owner's properties with their rooms keyed by
// property id, including each room's levy status and expiry.
func (s *roomService) ListOwnerRooms(ctx context.Context, ownerID int32) ([]domain.Property, map[int32][]domain.Room, error) {
	if ownerID <= 0 {
		return nil, nil, domain.NewValidationError("owner id is required")
	}
	properties, err := s.propertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, asWorkflowError("list owner properties", err)
	}

	rooms := make(map[int32][]domain.Room, len(properties))
	for _, p := range properties {
		list, err := s.roomRepo.ListByProperty(ctx, p.ID)
		if err != nil {
			return nil, nil, asWorkflowError("list property rooms", err)
		}
		rooms[p.ID] = list
	}
	return properties, rooms, nil
}
