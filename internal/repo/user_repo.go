// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for users, their
// profiles, and their social links.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a row is not found, functions return ErrNotFound.
//   - Every other database failure is wrapped with apperr.Storage together
//     with the name of the operation, so the HTTP boundary can classify it
//     (unique, foreign key, permission, other) without parsing strings here.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateUser inserts u, assigning a UUID when u.ID is empty.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) (*domain.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, wrap("create user", err)
	}
	return u, nil
}

// GetUser fetches a user by primary key.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrap("get user", err)
	}
	return &u, nil
}

// GetUserByGitHub fetches a user by GitHub username (exact match).
func GetUserByGitHub(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "github_user_name = ?", username).Error; err != nil {
		return nil, wrap("get user by github", err)
	}
	return &u, nil
}

// UserExistsByGitHub reports whether a user with username exists.
func UserExistsByGitHub(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Where("github_user_name = ?", username).Count(&n).Error; err != nil {
		return false, wrap("count users by github", err)
	}
	return n > 0, nil
}

// DeleteUser removes a user; dependent rows go with it through ON DELETE CASCADE.
// Returns ErrNotFound when no row matched.
func DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateProfile inserts a profile for userID.
func CreateProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	now := time.Now().UTC()
	p := &domain.Profile{ID: uuid.NewString(), UserID: userID, CreatedAt: now, UpdatedAt: now}
	if err := db.WithContext(ctx).Omit("User").Create(p).Error; err != nil {
		return nil, wrap("create profile", err)
	}
	return p, nil
}

// GetProfile fetches a profile by primary key.
func GetProfile(ctx context.Context, db *gorm.DB, id string) (*domain.Profile, error) {
	var p domain.Profile
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, wrap("get profile", err)
	}
	return &p, nil
}

// GetProfileByUser fetches the profile owned by userID.
func GetProfileByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	var p domain.Profile
	if err := db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, wrap("get profile by user", err)
	}
	return &p, nil
}

// CreateLinks inserts l, assigning a UUID when l.ID is empty.
func CreateLinks(ctx context.Context, db *gorm.DB, l *domain.Links) (*domain.Links, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now
	if err := db.WithContext(ctx).Omit("User").Create(l).Error; err != nil {
		return nil, wrap("create links", err)
	}
	return l, nil
}

// GetLinksByUser fetches the links owned by userID.
func GetLinksByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Links, error) {
	var l domain.Links
	if err := db.WithContext(ctx).First(&l, "user_id = ?", userID).Error; err != nil {
		return nil, wrap("get links by user", err)
	}
	return &l, nil
}
