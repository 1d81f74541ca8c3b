package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// TrainingPostRepository persists training board posts, newest first.
type TrainingPostRepository interface {
	FetchAll(ctx context.Context) ([]model.TrainingPost, error)
	Upsert(ctx context.Context, record model.TrainingPost) error
	Delete(ctx context.Context, id string) error
}

type trainingPostRepository struct {
	db *gorm.DB
}

func NewTrainingPostRepository(db *gorm.DB) TrainingPostRepository {
	return &trainingPostRepository{db: db}
}

func (r *trainingPostRepository) FetchAll(ctx context.Context) ([]model.TrainingPost, error) {
	var items []model.TrainingPost
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&items).Error
	return items, err
}

func (r *trainingPostRepository) Upsert(ctx context.Context, record model.TrainingPost) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *trainingPostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("post_id = ?", id).
		Delete(&model.TrainingPost{}).Error
}
