package service

import (
	"fmt"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/model"
)

// Authorize rejects the actor unless its role grants the privileges of
// required. Roles are totally ordered: student < admin < super_admin, so a
// super admin passes every admin check.
func Authorize(actor *model.Actor, required model.Role) error {
	if actor == nil || !actor.Role.AtLeast(required) {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// AuthorizeSelf rejects the actor unless it is the student identified by
// studentSlug AND that student is currently enrolled. Dropped, expelled and
// graduated students keep their accounts but lose self-service access.
func AuthorizeSelf(actor *model.Actor, studentSlug string) error {
	if actor == nil || actor.Kind != model.ActorStudent || actor.Student == nil {
		return apperrors.ErrUnauthorized
	}
	if actor.Student.Slug != studentSlug {
		return apperrors.ErrUnauthorized
	}
	if !actor.Student.Enrolled() {
		return fmt.Errorf("student is not enrolled: %w", apperrors.ErrUnauthorized)
	}
	return nil
}

// authorizeRead admits administrators of the required role, or the student
// who owns the records when the actor is a student.
func authorizeRead(actor *model.Actor, studentSlug string, required model.Role) error {
	if actor != nil && actor.Kind == model.ActorStudent {
		return AuthorizeSelf(actor, studentSlug)
	}
	return Authorize(actor, required)
}
