package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateOrganization inserts o, assigning a UUID when o.ID is empty.
func CreateOrganization(ctx context.Context, db *gorm.DB, o *domain.Organization) (*domain.Organization, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, wrap("create organization", err)
	}
	return o, nil
}

// GetOrganization fetches an organization by primary key.
func GetOrganization(ctx context.Context, db *gorm.DB, id string) (*domain.Organization, error) {
	var o domain.Organization
	if err := db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, wrap("get organization", err)
	}
	return &o, nil
}

// CreateJob inserts j, assigning a UUID when j.ID is empty.
func CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) (*domain.Job, error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	j.CreatedAt, j.UpdatedAt = now, now
	if err := db.WithContext(ctx).Omit("Organization").Create(j).Error; err != nil {
		return nil, wrap("create job", err)
	}
	return j, nil
}

// GetJob fetches a job by primary key.
func GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	var j domain.Job
	if err := db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, wrap("get job", err)
	}
	return &j, nil
}

// CountJobs returns the number of jobs posted by an organization.
func CountJobs(ctx context.Context, db *gorm.DB, orgID string) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&domain.Job{}).Where("organization_id = ?", orgID).Count(&n).Error; err != nil {
		return 0, wrap("count jobs", err)
	}
	return n, nil
}

// ListJobsPage returns a page of an organization's jobs, newest first.
func ListJobsPage(ctx context.Context, db *gorm.DB, orgID string, offset, limit int) ([]domain.Job, error) {
	var out []domain.Job
	err := db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, wrap("list jobs", err)
	}
	return out, nil
}

// DeleteJob removes a job. Returns ErrNotFound when no row matched.
func DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Job{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete job", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
