package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_administrators",
		SQL: `CREATE TABLE IF NOT EXISTS administrators (
  id            BIGSERIAL   PRIMARY KEY,
  first_name    TEXT        NOT NULL,
  middle_name   TEXT        NOT NULL DEFAULT '',
  last_name     TEXT        NOT NULL,
  email         TEXT        NOT NULL UNIQUE,
  password      TEXT        NOT NULL,
  role          TEXT        NOT NULL CHECK (role IN ('admin', 'super_admin')),
  slug          TEXT        NOT NULL UNIQUE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_students",
		SQL: `CREATE TABLE IF NOT EXISTS students (
  id                BIGSERIAL   PRIMARY KEY,
  first_name        TEXT        NOT NULL,
  middle_name       TEXT        NOT NULL DEFAULT '',
  last_name         TEXT        NOT NULL,
  student_number    TEXT        NOT NULL UNIQUE,
  email             TEXT        NOT NULL UNIQUE,
  password          TEXT        NOT NULL,
  course            TEXT        NOT NULL,
  year              TEXT        NOT NULL,
  term              TEXT        NOT NULL,
  enrollment_status TEXT        NOT NULL DEFAULT 'enrolled'
    CHECK (enrollment_status IN ('enrolled', 'dropped', 'expelled', 'graduate')),
  slug              TEXT        NOT NULL UNIQUE,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at        TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_tokens",
		SQL: `CREATE TABLE IF NOT EXISTS tokens (
  id         BIGSERIAL   PRIMARY KEY,
  actor_kind TEXT        NOT NULL CHECK (actor_kind IN ('administrator', 'student')),
  actor_id   BIGINT      NOT NULL,
  token_hash TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  revoked_at TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_student_payments",
		SQL: `CREATE TABLE IF NOT EXISTS student_payments (
  id               BIGSERIAL        PRIMARY KEY,
  administrator_id BIGINT           NOT NULL REFERENCES administrators (id),
  student_id       BIGINT           NOT NULL REFERENCES students (id),
  is_full          BOOLEAN          NOT NULL DEFAULT FALSE,
  is_installment   BOOLEAN          NOT NULL DEFAULT FALSE,
  mode_of_payment  TEXT             NOT NULL,
  date_paid        DATE             NOT NULL,
  amount_paid      DOUBLE PRECISION NOT NULL CHECK (amount_paid > 0),
  balance          DOUBLE PRECISION,
  course           TEXT             NOT NULL DEFAULT '',
  year             TEXT             NOT NULL DEFAULT '',
  term             TEXT             NOT NULL DEFAULT '',
  status           TEXT             NOT NULL DEFAULT 'pending'
    CHECK (status IN ('pending', 'verified')),
  slug             TEXT             NOT NULL UNIQUE,
  created_at       TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ      NOT NULL DEFAULT now(),
  deleted_at       TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_student_registrar_files",
		SQL: `CREATE TABLE IF NOT EXISTS student_registrar_files (
  id               BIGSERIAL   PRIMARY KEY,
  administrator_id BIGINT      NOT NULL REFERENCES administrators (id),
  student_id       BIGINT      NOT NULL REFERENCES students (id),
  description      TEXT        NOT NULL,
  course           TEXT        NOT NULL DEFAULT '',
  year             TEXT        NOT NULL DEFAULT '',
  term             TEXT        NOT NULL DEFAULT '',
  status           TEXT        NOT NULL DEFAULT 'pending'
    CHECK (status IN ('pending', 'verified')),
  slug             TEXT        NOT NULL UNIQUE,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at       TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_student_files",
		SQL: `CREATE TABLE IF NOT EXISTS student_files (
  id                BIGSERIAL   PRIMARY KEY,
  administrator_id  BIGINT      NOT NULL REFERENCES administrators (id),
  student_id        BIGINT      NOT NULL REFERENCES students (id),
  student_payment_id        BIGINT REFERENCES student_payments (id),
  student_registrar_file_id BIGINT REFERENCES student_registrar_files (id),
  type              TEXT        NOT NULL
    CHECK (type IN ('display_photo', 'cor', 'permit', 'registrar_file', 'payment')),
  description       TEXT        NOT NULL DEFAULT '',
  extension         TEXT        NOT NULL,
  disk              TEXT        NOT NULL,
  path              TEXT        NOT NULL UNIQUE,
  course            TEXT        NOT NULL DEFAULT '',
  year              TEXT        NOT NULL DEFAULT '',
  term              TEXT        NOT NULL DEFAULT '',
  slug              TEXT        NOT NULL UNIQUE,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at        TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_user_logs",
		SQL: `CREATE TABLE IF NOT EXISTS user_logs (
  id               BIGSERIAL   PRIMARY KEY,
  administrator_id BIGINT      REFERENCES administrators (id),
  student_id       BIGINT      REFERENCES students (id),
  description      TEXT        NOT NULL,
  page             TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_tokens_actor",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tokens_actor ON tokens (actor_kind, actor_id);`,
	},
	{
		Name: "create_index_student_files_student_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_student_files_student_type ON student_files (student_id, type) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_index_student_files_payment",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_student_files_payment ON student_files (student_payment_id) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_index_student_files_registrar_file",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_student_files_registrar_file ON student_files (student_registrar_file_id) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_index_student_payments_student",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_student_payments_student ON student_payments (student_id) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_index_student_registrar_files_student",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_student_registrar_files_student ON student_registrar_files (student_id) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_index_user_logs_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_user_logs_created_at ON user_logs (created_at);`,
	},
}

// EnsureMigrated checks if the 'students' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.students') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
