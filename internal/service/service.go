package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// Package service contains the business logic. Services authorize the actor,
// validate input, orchestrate repositories and storage, and translate
// repository errors into apperrors sentinels. Handlers above stay free of
// business rules; repositories below stay free of them too.

// isNoRows reports whether err is the driver's empty-result marker.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// findStudentBySlug resolves an active student or reports NotFound.
func findStudentBySlug(ctx context.Context, repo repository.StudentRepository, slug string) (*model.Student, error) {
	s, err := repo.FindBySlug(ctx, slug, false)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("student")
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return s, nil
}

// appendAudit writes a user log entry attributed to the actor. Audit failures
// never fail the mutation they describe.
func appendAudit(ctx context.Context, logs repository.UserLogRepository, actor *model.Actor, description, page string) {
	if logs == nil || actor == nil {
		return
	}
	l := &model.UserLog{Description: description, Page: page}
	id := actor.ID()
	switch actor.Kind {
	case model.ActorAdministrator:
		l.AdministratorID = &id
	case model.ActorStudent:
		l.StudentID = &id
	}
	_ = logs.Append(ctx, l)
}
