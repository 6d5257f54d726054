package mocks

import (
	"context"

	"recordsapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) SlugInUse(ctx context.Context, class repository.RecordClass, slug string) (bool, error) {
	args := m.Called(ctx, class, slug)
	return args.Bool(0), args.Error(1)
}

// WithTx returns the mock itself so expectations set on it apply inside
// transactions too.
func (m *MockRecordRepository) WithTx(tx repository.DBTX) repository.RecordRepository {
	return m
}
