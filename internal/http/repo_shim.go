package httpapi

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/services"
)

// repoShim adapts the repository free functions to the repository interfaces
// expected by the services. This keeps services decoupled from the concrete
// repo package while reusing existing functions.
type repoShim struct{}

var (
	_ services.UserRepo        = repoShim{}
	_ services.ProfileRepo     = repoShim{}
	_ services.DocumentRepo    = repoShim{}
	_ services.OpportunityRepo = repoShim{}
)

// Users

func (repoShim) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) (*domain.User, error) {
	return repo.CreateUser(ctx, db, u)
}

func (repoShim) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}

func (repoShim) GetUserByGitHub(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.GetUserByGitHub(ctx, db, username)
}

func (repoShim) UserExistsByGitHub(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return repo.UserExistsByGitHub(ctx, db, username)
}

func (repoShim) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteUser(ctx, db, id)
}

// Profiles and links

func (repoShim) CreateProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	return repo.CreateProfile(ctx, db, userID)
}

func (repoShim) GetProfile(ctx context.Context, db *gorm.DB, id string) (*domain.Profile, error) {
	return repo.GetProfile(ctx, db, id)
}

func (repoShim) GetProfileByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	return repo.GetProfileByUser(ctx, db, userID)
}

func (repoShim) CreateLinks(ctx context.Context, db *gorm.DB, l *domain.Links) (*domain.Links, error) {
	return repo.CreateLinks(ctx, db, l)
}

func (repoShim) GetLinksByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Links, error) {
	return repo.GetLinksByUser(ctx, db, userID)
}

// Documents

func (repoShim) CreateDocument(ctx context.Context, db *gorm.DB, d *domain.Document) (*domain.Document, error) {
	return repo.CreateDocument(ctx, db, d)
}

func (repoShim) GetDocument(ctx context.Context, db *gorm.DB, id string) (*domain.Document, error) {
	return repo.GetDocument(ctx, db, id)
}

func (repoShim) UpdateDocument(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateDocument(ctx, db, id, fields)
}

func (repoShim) DeleteDocument(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteDocument(ctx, db, id)
}

func (repoShim) ListDocumentsByProfile(ctx context.Context, db *gorm.DB, profileID string) ([]domain.Document, error) {
	return repo.ListDocumentsByProfile(ctx, db, profileID)
}

func (repoShim) DocumentsStats(ctx context.Context, db *gorm.DB, profileID string) (int64, *time.Time, error) {
	return repo.DocumentsStats(ctx, db, profileID)
}

// Idempotency

func (repoShim) GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error) {
	return repo.GetIdempotency(ctx, db, scope, key, now)
}

func (repoShim) CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error) {
	return repo.CreateIdempotency(ctx, db, scope, key, resourceID, status, ttl)
}

// Organizations and jobs

func (repoShim) CreateOrganization(ctx context.Context, db *gorm.DB, o *domain.Organization) (*domain.Organization, error) {
	return repo.CreateOrganization(ctx, db, o)
}

func (repoShim) GetOrganization(ctx context.Context, db *gorm.DB, id string) (*domain.Organization, error) {
	return repo.GetOrganization(ctx, db, id)
}

func (repoShim) CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) (*domain.Job, error) {
	return repo.CreateJob(ctx, db, j)
}

func (repoShim) GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	return repo.GetJob(ctx, db, id)
}

func (repoShim) CountJobs(ctx context.Context, db *gorm.DB, orgID string) (int64, error) {
	return repo.CountJobs(ctx, db, orgID)
}

func (repoShim) ListJobsPage(ctx context.Context, db *gorm.DB, orgID string, offset, limit int) ([]domain.Job, error) {
	return repo.ListJobsPage(ctx, db, orgID, offset, limit)
}

func (repoShim) DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteJob(ctx, db, id)
}

func (repoShim) JobsStats(ctx context.Context, db *gorm.DB, orgID string) (int64, *time.Time, error) {
	return repo.JobsStats(ctx, db, orgID)
}
