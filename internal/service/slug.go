package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"recordsapi/internal/repository"
)

// slugBytes is the entropy of a slug: 15 random bytes hex-encode to a
// 30-character identifier.
const slugBytes = 15

// SlugGenerator issues opaque external identifiers. A generated slug is
// re-checked against every row of its record class, including soft-deleted
// ones, and redrawn on collision.
type SlugGenerator struct {
	records repository.RecordRepository
}

func NewSlugGenerator(records repository.RecordRepository) *SlugGenerator {
	return &SlugGenerator{records: records}
}

// WithTx returns a generator whose uniqueness checks run inside the given
// transaction, so freshly inserted rows are visible to it.
func (g *SlugGenerator) WithTx(tx repository.DBTX) *SlugGenerator {
	return &SlugGenerator{records: g.records.WithTx(tx)}
}

// Generate draws random slugs until one is free for the class.
func (g *SlugGenerator) Generate(ctx context.Context, class repository.RecordClass) (string, error) {
	for {
		buf := make([]byte, slugBytes)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		slug := hex.EncodeToString(buf)

		inUse, err := g.records.SlugInUse(ctx, class, slug)
		if err != nil {
			return "", fmt.Errorf("check slug uniqueness: %w", err)
		}
		if !inUse {
			return slug, nil
		}
	}
}
