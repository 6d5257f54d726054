package service

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// stubTxRunner runs the unit of work without a real transaction. Repository
// mocks return themselves from WithTx, so expectations carry through.
type stubTxRunner struct{}

func (stubTxRunner) RunInTx(ctx context.Context, fn func(tx repository.DBTX) error) error {
	return fn(nil)
}

func adminActor(role model.Role) *model.Actor {
	return &model.Actor{
		Kind: model.ActorAdministrator,
		Role: role,
		Administrator: &model.Administrator{
			ID:   7,
			Role: role,
			Slug: "admin-slug",
		},
	}
}

func studentActor(status model.EnrollmentStatus) *model.Actor {
	return &model.Actor{
		Kind: model.ActorStudent,
		Role: model.RoleStudent,
		Student: &model.Student{
			ID:               42,
			LastName:         "Reyes",
			StudentNumber:    "2021-00042",
			EnrollmentStatus: status,
			Slug:             "student-slug",
		},
	}
}

func sampleStudent() *model.Student {
	return &model.Student{
		ID:               42,
		FirstName:        "Ana",
		LastName:         "Reyes",
		StudentNumber:    "2021-00042",
		Email:            "ana@example.com",
		Course:           "BSIT",
		Year:             "3",
		Term:             "1",
		EnrollmentStatus: model.StatusEnrolled,
		Slug:             "student-slug",
	}
}
