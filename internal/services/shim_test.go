package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// ---------- test DB + repo shim ----------

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// shim adapts the repo package functions to every service repo interface
// (like router.go does).
type shim struct{}

func (shim) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) (*domain.User, error) {
	return repo.CreateUser(ctx, db, u)
}
func (shim) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}
func (shim) GetUserByGitHub(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.GetUserByGitHub(ctx, db, username)
}
func (shim) UserExistsByGitHub(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return repo.UserExistsByGitHub(ctx, db, username)
}
func (shim) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteUser(ctx, db, id)
}
func (shim) CreateProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	return repo.CreateProfile(ctx, db, userID)
}
func (shim) GetProfile(ctx context.Context, db *gorm.DB, id string) (*domain.Profile, error) {
	return repo.GetProfile(ctx, db, id)
}
func (shim) GetProfileByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	return repo.GetProfileByUser(ctx, db, userID)
}
func (shim) CreateLinks(ctx context.Context, db *gorm.DB, l *domain.Links) (*domain.Links, error) {
	return repo.CreateLinks(ctx, db, l)
}
func (shim) GetLinksByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Links, error) {
	return repo.GetLinksByUser(ctx, db, userID)
}
func (shim) CreateDocument(ctx context.Context, db *gorm.DB, d *domain.Document) (*domain.Document, error) {
	return repo.CreateDocument(ctx, db, d)
}
func (shim) GetDocument(ctx context.Context, db *gorm.DB, id string) (*domain.Document, error) {
	return repo.GetDocument(ctx, db, id)
}
func (shim) UpdateDocument(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateDocument(ctx, db, id, fields)
}
func (shim) DeleteDocument(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteDocument(ctx, db, id)
}
func (shim) ListDocumentsByProfile(ctx context.Context, db *gorm.DB, profileID string) ([]domain.Document, error) {
	return repo.ListDocumentsByProfile(ctx, db, profileID)
}
func (shim) DocumentsStats(ctx context.Context, db *gorm.DB, profileID string) (int64, *time.Time, error) {
	return repo.DocumentsStats(ctx, db, profileID)
}
func (shim) GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error) {
	return repo.GetIdempotency(ctx, db, scope, key, now)
}
func (shim) CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error) {
	return repo.CreateIdempotency(ctx, db, scope, key, resourceID, status, ttl)
}
func (shim) CreateOrganization(ctx context.Context, db *gorm.DB, o *domain.Organization) (*domain.Organization, error) {
	return repo.CreateOrganization(ctx, db, o)
}
func (shim) GetOrganization(ctx context.Context, db *gorm.DB, id string) (*domain.Organization, error) {
	return repo.GetOrganization(ctx, db, id)
}
func (shim) CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) (*domain.Job, error) {
	return repo.CreateJob(ctx, db, j)
}
func (shim) GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	return repo.GetJob(ctx, db, id)
}
func (shim) CountJobs(ctx context.Context, db *gorm.DB, orgID string) (int64, error) {
	return repo.CountJobs(ctx, db, orgID)
}
func (shim) ListJobsPage(ctx context.Context, db *gorm.DB, orgID string, offset, limit int) ([]domain.Job, error) {
	return repo.ListJobsPage(ctx, db, orgID, offset, limit)
}
func (shim) DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteJob(ctx, db, id)
}
func (shim) JobsStats(ctx context.Context, db *gorm.DB, orgID string) (int64, *time.Time, error) {
	return repo.JobsStats(ctx, db, orgID)
}

// compile-time checks
var (
	_ UserRepo        = shim{}
	_ ProfileRepo     = shim{}
	_ DocumentRepo    = shim{}
	_ OpportunityRepo = shim{}
)

func strp(s string) *string { return &s }
