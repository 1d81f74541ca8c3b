// Package repository implements the database-facing side of the record
// store, one repository per record kind. Each repository satisfies the
// store's RemoteOps contract for its kind.
package repository

import "gorm.io/gorm"

// Repository aggregates the per-kind repositories.
type Repository struct {
	Schedule ScheduleRepository
	Training TrainingPostRepository
	Shortcut ShortcutRepository
	User     UserRepository
}

// New builds the repository aggregate on one database handle.
func New(db *gorm.DB) *Repository {
	return &Repository{
		Schedule: NewScheduleRepository(db),
		Training: NewTrainingPostRepository(db),
		Shortcut: NewShortcutRepository(db),
		User:     NewUserRepository(db),
	}
}
