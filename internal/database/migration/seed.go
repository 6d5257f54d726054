package migration

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SeedSuperAdmin inserts the initial super administrator so a fresh
// deployment has an account that can create the rest. The insert runs only
// when the administrators table is completely empty and both email and
// password are configured; otherwise the step logs a skip and does nothing.
func SeedSuperAdmin(ctx context.Context, db *sql.DB, loc *time.Location, email, password, firstName, lastName string) error {
	start := time.Now()

	if email == "" || password == "" {
		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "db_seed_skip",
			"status":    "success",
			"msg":       "bootstrap admin credentials not configured, skipping seed",
		})
		return nil
	}

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM administrators").Scan(&count); err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_seed_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to count administrators: %v", err),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to count administrators: %w", err)
	}
	if count > 0 {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_seed_skip",
			"status":      "success",
			"msg":         "administrators already exist, skipping seed",
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password: %w", err)
	}
	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("read random bytes: %w", err)
	}
	slug := hex.EncodeToString(buf)

	const insert = `INSERT INTO administrators (first_name, last_name, email, password, role, slug)
VALUES ($1, $2, $3, $4, 'super_admin', $5)`
	if _, err := db.ExecContext(ctx, insert, firstName, lastName, email, string(hash), slug); err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_seed_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to insert bootstrap admin: %v", err),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to insert bootstrap admin: %w", err)
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_seed_success",
		"status":      "success",
		"admin_email": email,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
