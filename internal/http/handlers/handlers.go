package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/services"
	"github.com/tbourn/go-career-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// UserService defines member lifecycle operations consumed by HTTP handlers.
type UserService interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByGitHub(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ProfileService defines profile operations.
type ProfileService interface {
	Create(ctx context.Context, userID string) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	GetByUser(ctx context.Context, userID string) (*domain.Profile, error)
}

// LinksService defines operations on a member's external accounts.
type LinksService interface {
	Create(ctx context.Context, l *domain.Links) (*domain.Links, error)
	GetByUser(ctx context.Context, userID string) (*domain.Links, error)
}

// DocumentService defines resume and CV operations. Replay and Remember back
// the Idempotency-Key support of document creation.
type DocumentService interface {
	Create(ctx context.Context, username string, d *domain.Document) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	Update(ctx context.Context, id string, patch services.DocumentPatch) (*domain.Document, error)
	Delete(ctx context.Context, id string) (string, error)
	ListByGitHub(ctx context.Context, username string) ([]domain.Document, string, error)
	Replay(ctx context.Context, key string) (*domain.Document, bool)
	Remember(ctx context.Context, key, id string, status int) error
}

// OrganizationService defines organization operations.
type OrganizationService interface {
	Create(ctx context.Context, o *domain.Organization) (*domain.Organization, error)
	Get(ctx context.Context, id string) (*domain.Organization, error)
}

// JobService defines job posting operations.
type JobService interface {
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	ListByOrganization(ctx context.Context, orgID string, page, pageSize int) ([]domain.Job, int64, error)
	ETag(ctx context.Context, orgID string, page, pageSize int) (string, error)
	Delete(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Services bundles the application services the handlers depend on.
type Services struct {
	Users         UserService
	Profiles      ProfileService
	Links         LinksService
	Documents     DocumentService
	Organizations OrganizationService
	Jobs          JobService
}

// Handlers groups the HTTP endpoints of the API. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	users    UserService
	profiles ProfileService
	links    LinksService
	docs     DocumentService
	orgs     OrganizationService
	jobs     JobService
}

// New constructs a Handlers instance bound to the given services.
func New(s Services) *Handlers {
	return &Handlers{
		users:    s.Users,
		profiles: s.Profiles,
		links:    s.Links,
		docs:     s.Documents,
		orgs:     s.Organizations,
		jobs:     s.Jobs,
	}
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

func newPagination(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// clampPagination reads page and page_size from the query: page defaults to
// 1, page_size to 20 and is capped at 100.
func clampPagination(c *gin.Context) (page, pageSize int) {
	p := utils.ParsePage(c.Query("page"), c.Query("page_size"), 20, 100)
	return p.Number, p.Size
}
