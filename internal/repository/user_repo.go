package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// UserRepository persists registered accounts, keyed by email.
type UserRepository interface {
	FetchAll(ctx context.Context) ([]model.User, error)
	Upsert(ctx context.Context, record model.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FetchAll(ctx context.Context) ([]model.User, error) {
	var items []model.User
	err := r.db.WithContext(ctx).
		Order("email ASC").
		Find(&items).Error
	return items, err
}

func (r *userRepository) Upsert(ctx context.Context, record model.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", id).
		Delete(&model.User{}).Error
}
