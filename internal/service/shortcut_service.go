package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

var ErrShortcutNotFound = errors.New("바로가기를 찾을 수 없습니다")

// ShortcutService manages the single global shortcut set. Mutations are
// admin-only, enforced at the router.
type ShortcutService interface {
	List(ctx context.Context) (*dto.ShortcutListResponse, error)
	Create(ctx context.Context, req *dto.UpsertShortcutRequest) (*model.Shortcut, error)
	Update(ctx context.Context, id string, req *dto.UpsertShortcutRequest) (*model.Shortcut, error)
	Delete(ctx context.Context, id string) error
}

type shortcutService struct {
	stores *Stores
	logger *zap.Logger
}

// NewShortcutService creates a ShortcutService instance.
func NewShortcutService(stores *Stores, logger *zap.Logger) ShortcutService {
	return &shortcutService{stores: stores, logger: logger}
}

func (s *shortcutService) List(ctx context.Context) (*dto.ShortcutListResponse, error) {
	return &dto.ShortcutListResponse{Items: s.stores.Shortcuts.FetchAll(ctx)}, nil
}

func (s *shortcutService) Create(ctx context.Context, req *dto.UpsertShortcutRequest) (*model.Shortcut, error) {
	record := model.Shortcut{
		ShortcutID: uuid.New().String(),
		Label:      req.Label,
		URL:        req.URL,
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	saved, err := s.stores.Shortcuts.Upsert(ctx, record)
	return &saved, err
}

func (s *shortcutService) Update(ctx context.Context, id string, req *dto.UpsertShortcutRequest) (*model.Shortcut, error) {
	existing, ok := s.find(ctx, id)
	if !ok {
		return nil, ErrShortcutNotFound
	}
	existing.Label = req.Label
	existing.URL = req.URL
	existing.UpdatedAt = time.Now()

	saved, err := s.stores.Shortcuts.Upsert(ctx, existing)
	return &saved, err
}

func (s *shortcutService) Delete(ctx context.Context, id string) error {
	if _, ok := s.find(ctx, id); !ok {
		return ErrShortcutNotFound
	}
	return s.stores.Shortcuts.Delete(ctx, id)
}

func (s *shortcutService) find(ctx context.Context, id string) (model.Shortcut, bool) {
	for _, it := range s.stores.Shortcuts.FetchAll(ctx) {
		if it.ShortcutID == id {
			return it, true
		}
	}
	return model.Shortcut{}, false
}
