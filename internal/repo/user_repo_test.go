package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/domain"
)

func TestCreateUser_AssignsIDAndRoundTrips(t *testing.T) {
	db := newTestDB(t, domain.Models()...)
	ctx := context.Background()

	u, err := CreateUser(ctx, db, &domain.User{GitHubUsername: "alice", PrimarySpecialization: "BACKEND"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatalf("unexpected user: %+v", u)
	}

	got, err := GetUser(ctx, db, u.ID)
	if err != nil || got.GitHubUsername != "alice" {
		t.Fatalf("GetUser: %v %+v", err, got)
	}
	byGH, err := GetUserByGitHub(ctx, db, "alice")
	if err != nil || byGH.ID != u.ID {
		t.Fatalf("GetUserByGitHub: %v %+v", err, byGH)
	}
	exists, err := UserExistsByGitHub(ctx, db, "alice")
	if err != nil || !exists {
		t.Fatalf("UserExistsByGitHub: %v %v", exists, err)
	}
}

func TestCreateUser_DuplicateGitHub_IsStorageUnique(t *testing.T) {
	db := newTestDB(t, domain.Models()...)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, &domain.User{GitHubUsername: "alice", PrimarySpecialization: "BACKEND"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := CreateUser(ctx, db, &domain.User{GitHubUsername: "alice", PrimarySpecialization: "BACKEND"})
	var se *apperr.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected *apperr.StorageError, got %T %v", err, err)
	}
	if se.Op != "create user" || apperr.Classify(err) != apperr.StorageUnique {
		t.Fatalf("unexpected classification: op=%q class=%s", se.Op, apperr.Classify(err))
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := newTestDB(t, domain.Models()...)
	if _, err := GetUser(context.Background(), db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := GetUserByGitHub(context.Background(), db, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUser_NoTable_IsStorageError(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	_, err := GetUser(context.Background(), db, "x")
	var se *apperr.StorageError
	if !errors.As(err, &se) || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestDeleteUser_CascadesAndReportsMissing(t *testing.T) {
	db := newTestDB(t, domain.Models()...)
	ctx := context.Background()

	u, _ := CreateUser(ctx, db, &domain.User{GitHubUsername: "bob", PrimarySpecialization: "ML"})
	p, err := CreateProfile(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if _, err := CreateDocument(ctx, db, &domain.Document{ProfileID: p.ID}); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	if err := DeleteUser(ctx, db, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := GetProfile(ctx, db, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("profile should cascade-delete, got %v", err)
	}
	if err := DeleteUser(ctx, db, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestCreateProfile_UnknownUser_IsForeignKey(t *testing.T) {
	db := newTestDB(t, domain.Models()...)
	_, err := CreateProfile(context.Background(), db, "no-such-user")
	if apperr.Classify(err) != apperr.StorageForeignKey {
		t.Fatalf("expected FK violation, got %s (%v)", apperr.Classify(err), err)
	}
}

func TestProfileAndLinksLookups(t *testing.T) {
	db := newTestDB(t, domain.Models()...)
	ctx := context.Background()

	u, _ := CreateUser(ctx, db, &domain.User{GitHubUsername: "carol", PrimarySpecialization: "WEB"})
	p, _ := CreateProfile(ctx, db, u.ID)

	got, err := GetProfileByUser(ctx, db, u.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("GetProfileByUser: %v %+v", err, got)
	}
	if _, err := CreateProfile(ctx, db, u.ID); apperr.Classify(err) != apperr.StorageUnique {
		t.Fatalf("second profile should violate uniqueness, got %v", err)
	}

	l, err := CreateLinks(ctx, db, &domain.Links{UserID: u.ID, GitHubUsername: "carol", LinkedInUsername: "carol-li", LeetcodeUsername: "carol-lc"})
	if err != nil {
		t.Fatalf("CreateLinks: %v", err)
	}
	gotL, err := GetLinksByUser(ctx, db, u.ID)
	if err != nil || gotL.ID != l.ID {
		t.Fatalf("GetLinksByUser: %v %+v", err, gotL)
	}
	if _, err := GetLinksByUser(ctx, db, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
