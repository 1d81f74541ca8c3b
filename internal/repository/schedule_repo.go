package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// ScheduleRepository persists calendar entries. Fetch order is date
// ascending, the kind's canonical sort.
type ScheduleRepository interface {
	FetchAll(ctx context.Context) ([]model.Schedule, error)
	Upsert(ctx context.Context, record model.Schedule) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository builds a GORM-backed schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) FetchAll(ctx context.Context) ([]model.Schedule, error) {
	var items []model.Schedule
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&items).Error
	return items, err
}

func (r *scheduleRepository) Upsert(ctx context.Context, record model.Schedule) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "schedule_id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.Schedule{}).Error
}
