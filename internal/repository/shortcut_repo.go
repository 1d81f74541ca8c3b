package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// ShortcutRepository persists the admin-managed global shortcut set.
type ShortcutRepository interface {
	FetchAll(ctx context.Context) ([]model.Shortcut, error)
	Upsert(ctx context.Context, record model.Shortcut) error
	Delete(ctx context.Context, id string) error
}

type shortcutRepository struct {
	db *gorm.DB
}

func NewShortcutRepository(db *gorm.DB) ShortcutRepository {
	return &shortcutRepository{db: db}
}

func (r *shortcutRepository) FetchAll(ctx context.Context) ([]model.Shortcut, error) {
	var items []model.Shortcut
	err := r.db.WithContext(ctx).
		Order("label ASC").
		Find(&items).Error
	return items, err
}

func (r *shortcutRepository) Upsert(ctx context.Context, record model.Shortcut) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shortcut_id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *shortcutRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("shortcut_id = ?", id).
		Delete(&model.Shortcut{}).Error
}
