package service

import (
	"context"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type auditService struct {
	actionRepo repository.AdminActionRepository
}

func NewAuditService(actionRepo repository.AdminActionRepository) AuditService {
	return &auditService{actionRepo: actionRepo}
}

func (s *auditService) ListAdminActions(ctx context.Context, page, pageSize int32) ([]domain.AdminAction, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	actions, count, err := s.actionRepo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, asWorkflowError("list admin actions", err)
	}
	return actions, count, nil
}
