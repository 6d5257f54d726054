package service

import (
	"context"
	"fmt"
	"strings"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// UserLogService exposes the append-only audit trail. Entries are written by
// the other services on mutations; listing them is super-admin only.
type UserLogService interface {
	Append(ctx context.Context, actor *model.Actor, description, page string) error
	List(ctx context.Context, actor *model.Actor) ([]model.UserLog, error)
}

type userLogService struct {
	logs repository.UserLogRepository
}

func NewUserLogService(logs repository.UserLogRepository) UserLogService {
	return &userLogService{logs: logs}
}

func (s *userLogService) Append(ctx context.Context, actor *model.Actor, description, page string) error {
	if actor == nil {
		return apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.Validation("description")
	}
	l := &model.UserLog{Description: description, Page: page}
	id := actor.ID()
	switch actor.Kind {
	case model.ActorAdministrator:
		l.AdministratorID = &id
	case model.ActorStudent:
		l.StudentID = &id
	default:
		return apperrors.ErrUnauthorized
	}
	if err := s.logs.Append(ctx, l); err != nil {
		return fmt.Errorf("append user log: %w", err)
	}
	return nil
}

func (s *userLogService) List(ctx context.Context, actor *model.Actor) ([]model.UserLog, error) {
	if err := Authorize(actor, model.RoleSuperAdmin); err != nil {
		return nil, err
	}
	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user logs: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrEmpty
	}
	return entries, nil
}
