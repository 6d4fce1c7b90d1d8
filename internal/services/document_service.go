package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/domain"
)

// ScopeDocumentCreate is the idempotency scope of document creation.
const ScopeDocumentCreate = "document.create"

// DocumentRepo defines the repository contract required by DocumentService.
type DocumentRepo interface {
	GetUserByGitHub(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)
	GetProfileByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error)

	CreateDocument(ctx context.Context, db *gorm.DB, d *domain.Document) (*domain.Document, error)
	GetDocument(ctx context.Context, db *gorm.DB, id string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error
	DeleteDocument(ctx context.Context, db *gorm.DB, id string) error
	ListDocumentsByProfile(ctx context.Context, db *gorm.DB, profileID string) ([]domain.Document, error)
	DocumentsStats(ctx context.Context, db *gorm.DB, profileID string) (int64, *time.Time, error)

	GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error)
	CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error)
}

// DocumentPatch lists the document fields an update may change. Nil fields
// are left untouched.
type DocumentPatch struct {
	DocumentName  *string
	DocumentType  *string
	DocumentKind  *string
	Latex         *string
	BaseStructure domain.JSONObject
}

func (p DocumentPatch) columns() map[string]any {
	cols := map[string]any{}
	if p.DocumentName != nil {
		cols["document_name"] = *p.DocumentName
	}
	if p.DocumentType != nil {
		cols["document_type"] = *p.DocumentType
	}
	if p.DocumentKind != nil {
		cols["document_kind"] = *p.DocumentKind
	}
	if p.Latex != nil {
		cols["latex"] = *p.Latex
	}
	if p.BaseStructure != nil {
		cols["base_structure"] = p.BaseStructure
	}
	return cols
}

// DocumentService manages the resumes and CVs saved on a profile. Documents
// are addressed from the outside through the owner's GitHub username.
type DocumentService struct {
	DB   *gorm.DB
	Repo DocumentRepo

	// IdempotencyTTL bounds how long a create may be replayed.
	IdempotencyTTL time.Duration
}

// NewDocumentService constructs a DocumentService with a 24h replay window.
func NewDocumentService(db *gorm.DB, r DocumentRepo) *DocumentService {
	return &DocumentService{DB: db, Repo: r, IdempotencyTTL: 24 * time.Hour}
}

// profileOf resolves the profile of the user owning username.
func (s *DocumentService) profileOf(ctx context.Context, username string) (*domain.Profile, error) {
	u, err := s.Repo.GetUserByGitHub(ctx, s.DB, username)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.GitHubUsernameNotFound(username) })
	}
	p, err := s.Repo.GetProfileByUser(ctx, s.DB, u.ID)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.ProfileNotFoundBy("user ID", u.ID) })
	}
	return p, nil
}

// Create saves d on the profile of the user owning username.
func (s *DocumentService) Create(ctx context.Context, username string, d *domain.Document) (*domain.Document, error) {
	p, err := s.profileOf(ctx, username)
	if err != nil {
		return nil, err
	}
	d.ProfileID = p.ID
	return s.Repo.CreateDocument(ctx, s.DB, d)
}

// Get returns a document by ID or apperr.DocumentNotFound.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	d, err := s.Repo.GetDocument(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.DocumentNotFound(id) })
	}
	return d, nil
}

// Update applies the non-nil fields of patch and returns the stored document.
func (s *DocumentService) Update(ctx context.Context, id string, patch DocumentPatch) (*domain.Document, error) {
	cols := patch.columns()
	if len(cols) == 0 {
		return s.Get(ctx, id)
	}
	if err := s.Repo.UpdateDocument(ctx, s.DB, id, cols); err != nil {
		return nil, orNotFound(err, func() error { return apperr.DocumentNotFound(id) })
	}
	return s.Get(ctx, id)
}

// Delete removes a document and returns the confirmation message shown to
// the client.
func (s *DocumentService) Delete(ctx context.Context, id string) (string, error) {
	if err := s.Repo.DeleteDocument(ctx, s.DB, id); err != nil {
		return "", orNotFound(err, func() error { return apperr.DocumentNotFound(id) })
	}
	return fmt.Sprintf("Document %s deleted successfully.", id), nil
}

// ListByGitHub returns the documents of the user owning username, newest
// first, together with a weak ETag describing the result.
func (s *DocumentService) ListByGitHub(ctx context.Context, username string) ([]domain.Document, string, error) {
	p, err := s.profileOf(ctx, username)
	if err != nil {
		return nil, "", err
	}
	etag, err := s.ETag(ctx, p.ID)
	if err != nil {
		return nil, "", err
	}
	docs, err := s.Repo.ListDocumentsByProfile(ctx, s.DB, p.ID)
	if err != nil {
		return nil, "", err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, etag, nil
}

// ETag builds the weak validator of a profile's document list from its size
// and latest modification.
func (s *DocumentService) ETag(ctx context.Context, profileID string) (string, error) {
	count, maxTS, err := s.Repo.DocumentsStats(ctx, s.DB, profileID)
	if err != nil {
		return "", err
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	return fmt.Sprintf(`W/"documents:%s:%d:%d"`, profileID, count, ts), nil
}

// Replay returns the document created earlier under key, if any. Lookup
// failures count as a miss so the request proceeds normally.
func (s *DocumentService) Replay(ctx context.Context, key string) (*domain.Document, bool) {
	rec, err := s.Repo.GetIdempotency(ctx, s.DB, ScopeDocumentCreate, key, time.Now().UTC())
	if err != nil || rec == nil {
		return nil, false
	}
	d, err := s.Repo.GetDocument(ctx, s.DB, rec.ResourceID)
	if err != nil {
		return nil, false
	}
	return d, true
}

// Remember records that key produced document id. Best effort: a record
// written concurrently under the same key wins.
func (s *DocumentService) Remember(ctx context.Context, key, id string, status int) error {
	_, err := s.Repo.CreateIdempotency(ctx, s.DB, ScopeDocumentCreate, key, id, status, s.IdempotencyTTL)
	return err
}
