package postgres

import (
	"context"
	"testing"

	"recordsapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRecordPostgres_SlugInUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	t.Run("slug taken", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM students WHERE slug = ").
			WithArgs("taken").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		inUse, err := repo.SlugInUse(ctx, repository.ClassStudent, "taken")

		assert.NoError(t, err)
		assert.True(t, inUse)
	})

	t.Run("slug free", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM student_files WHERE slug = ").
			WithArgs("fresh").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		inUse, err := repo.SlugInUse(ctx, repository.ClassFile, "fresh")

		assert.NoError(t, err)
		assert.False(t, inUse)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := repo.SlugInUse(ctx, repository.RecordClass("ghost"), "slug")

		assert.Error(t, err)
	})
}
