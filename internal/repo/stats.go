// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (weak ETags) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// DocumentsStats returns the number of documents of a profile and the greatest
// UpdatedAt among them. When the profile has no documents, count is 0 and
// maxUpdatedAt is nil.
func DocumentsStats(ctx context.Context, db *gorm.DB, profileID string) (count int64, maxUpdatedAt *time.Time, err error) {
	return tableStats(ctx, db.Model(&domain.Document{}).Where("profile_id = ?", profileID), "documents stats")
}

// JobsStats is DocumentsStats for the jobs of an organization.
func JobsStats(ctx context.Context, db *gorm.DB, orgID string) (count int64, maxUpdatedAt *time.Time, err error) {
	return tableStats(ctx, db.Model(&domain.Job{}).Where("organization_id = ?", orgID), "jobs stats")
}

func tableStats(ctx context.Context, q *gorm.DB, op string) (int64, *time.Time, error) {
	q = q.WithContext(ctx)

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return 0, nil, wrap(op, err)
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err := q.Session(&gorm.Session{}).Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, wrap(op, err)
	}
	return count, &row.UpdatedAt, nil
}
