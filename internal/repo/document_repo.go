package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateDocument inserts d, assigning a UUID when d.ID is empty.
func CreateDocument(ctx context.Context, db *gorm.DB, d *domain.Document) (*domain.Document, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now
	if err := db.WithContext(ctx).Omit("Profile").Create(d).Error; err != nil {
		return nil, wrap("create document", err)
	}
	return d, nil
}

// GetDocument fetches a document by primary key.
func GetDocument(ctx context.Context, db *gorm.DB, id string) (*domain.Document, error) {
	var d domain.Document
	if err := db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, wrap("get document", err)
	}
	return &d, nil
}

// UpdateDocument applies the given column values to document id and bumps
// updated_at. Only the listed columns change. Returns ErrNotFound when no row
// matched.
func UpdateDocument(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["updated_at"] = time.Now().UTC()
	res := db.WithContext(ctx).Model(&domain.Document{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrap("update document", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDocument removes a document. Returns ErrNotFound when no row matched.
func DeleteDocument(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Document{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete document", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDocumentsByProfile returns every document of a profile, newest first.
func ListDocumentsByProfile(ctx context.Context, db *gorm.DB, profileID string) ([]domain.Document, error) {
	var out []domain.Document
	err := db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, wrap("list documents", err)
	}
	return out, nil
}
