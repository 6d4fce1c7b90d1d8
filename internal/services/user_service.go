package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error)
	GetUserByGitHub(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)
	UserExistsByGitHub(ctx context.Context, db *gorm.DB, username string) (bool, error)
	DeleteUser(ctx context.Context, db *gorm.DB, id string) error
}

// UserService manages platform members. GitHub usernames are unique and are
// the public lookup key of a user.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Create registers u. The GitHub username is trimmed and must not be taken;
// an existing user yields apperr.GitHubUsernameAlreadyExists. A concurrent
// insert that slips past the check surfaces as a unique-violation storage
// error.
func (s *UserService) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	u.GitHubUsername = strings.TrimSpace(u.GitHubUsername)
	if u.Rank == "" {
		u.Rank = "UNRANKED"
	}

	exists, err := s.Repo.UserExistsByGitHub(ctx, s.DB, u.GitHubUsername)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.GitHubUsernameAlreadyExists(u.GitHubUsername)
	}
	return s.Repo.CreateUser(ctx, s.DB, u)
}

// Get returns the user with the given ID or apperr.UserNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.Repo.GetUser(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.UserNotFound(id) })
	}
	return u, nil
}

// GetByGitHub returns the user owning a GitHub username or
// apperr.GitHubUsernameNotFound.
func (s *UserService) GetByGitHub(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.Repo.GetUserByGitHub(ctx, s.DB, username)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.GitHubUsernameNotFound(username) })
	}
	return u, nil
}

// Delete removes a user together with everything it owns.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteUser(ctx, s.DB, id); err != nil {
		return orNotFound(err, func() error { return apperr.UserNotFound(id) })
	}
	return nil
}
