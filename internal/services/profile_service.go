package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/domain"
)

// ProfileRepo defines the repository contract required by ProfileService and
// LinksService.
type ProfileRepo interface {
	GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error)
	CreateProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error)
	GetProfile(ctx context.Context, db *gorm.DB, id string) (*domain.Profile, error)
	GetProfileByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error)
	CreateLinks(ctx context.Context, db *gorm.DB, l *domain.Links) (*domain.Links, error)
	GetLinksByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Links, error)
}

// ProfileService manages the single resume profile a user may own.
type ProfileService struct {
	DB   *gorm.DB
	Repo ProfileRepo
}

// NewProfileService constructs a ProfileService.
func NewProfileService(db *gorm.DB, r ProfileRepo) *ProfileService {
	return &ProfileService{DB: db, Repo: r}
}

// Create opens a profile for userID. The user must exist and must not have a
// profile yet.
func (s *ProfileService) Create(ctx context.Context, userID string) (*domain.Profile, error) {
	if _, err := s.Repo.GetUser(ctx, s.DB, userID); err != nil {
		return nil, orNotFound(err, func() error { return apperr.UserNotFound(userID) })
	}
	_, err := s.Repo.GetProfileByUser(ctx, s.DB, userID)
	switch {
	case err == nil:
		return nil, apperr.ProfileAlreadyExists(userID)
	case !notFound(err):
		return nil, err
	}
	return s.Repo.CreateProfile(ctx, s.DB, userID)
}

// Get returns a profile by ID or apperr.ProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := s.Repo.GetProfile(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.ProfileNotFound(id) })
	}
	return p, nil
}

// GetByUser returns the profile owned by userID. A missing profile is
// reported with the user ID as lookup key.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.Repo.GetProfileByUser(ctx, s.DB, userID)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.ProfileNotFoundBy("user ID", userID) })
	}
	return p, nil
}

// LinksService manages a user's handles on other platforms.
type LinksService struct {
	DB   *gorm.DB
	Repo ProfileRepo
}

// NewLinksService constructs a LinksService.
func NewLinksService(db *gorm.DB, r ProfileRepo) *LinksService {
	return &LinksService{DB: db, Repo: r}
}

// Create stores l for its user. The user must exist and must not have links
// yet. Handles already used by someone else surface as unique-violation
// storage errors.
func (s *LinksService) Create(ctx context.Context, l *domain.Links) (*domain.Links, error) {
	if _, err := s.Repo.GetUser(ctx, s.DB, l.UserID); err != nil {
		return nil, orNotFound(err, func() error { return apperr.UserNotFound(l.UserID) })
	}
	_, err := s.Repo.GetLinksByUser(ctx, s.DB, l.UserID)
	switch {
	case err == nil:
		return nil, apperr.LinksAlreadyExists(l.UserID)
	case !notFound(err):
		return nil, err
	}
	return s.Repo.CreateLinks(ctx, s.DB, l)
}

// GetByUser returns the links of userID or apperr.LinksNotFound.
func (s *LinksService) GetByUser(ctx context.Context, userID string) (*domain.Links, error) {
	l, err := s.Repo.GetLinksByUser(ctx, s.DB, userID)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.LinksNotFound(userID) })
	}
	return l, nil
}
