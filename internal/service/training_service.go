package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

var ErrPostNotFound = errors.New("자료를 찾을 수 없습니다")

// TrainingService manages the training/notice board. Posts have no privacy
// flag; anonymous viewers get the listing without material links.
type TrainingService interface {
	List(ctx context.Context, authenticated bool) (*dto.TrainingPostListResponse, error)
	Get(ctx context.Context, id string) (*dto.TrainingPostView, error)
	Create(ctx context.Context, authorEmail string, req *dto.UpsertTrainingPostRequest) (*model.TrainingPost, error)
	Update(ctx context.Context, id, viewerEmail string, role model.Role, req *dto.UpsertTrainingPostRequest) (*model.TrainingPost, error)
	Delete(ctx context.Context, id, viewerEmail string, role model.Role) error
}

type trainingService struct {
	stores *Stores
	logger *zap.Logger
}

// NewTrainingService creates a TrainingService instance.
func NewTrainingService(stores *Stores, logger *zap.Logger) TrainingService {
	return &trainingService{stores: stores, logger: logger}
}

func (s *trainingService) List(ctx context.Context, authenticated bool) (*dto.TrainingPostListResponse, error) {
	posts := s.stores.Posts.FetchAll(ctx)
	items := make([]dto.TrainingPostView, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.NewTrainingPostView(p, authenticated))
	}
	return &dto.TrainingPostListResponse{Items: items, Total: len(items)}, nil
}

func (s *trainingService) Get(ctx context.Context, id string) (*dto.TrainingPostView, error) {
	post, ok := s.find(ctx, id)
	if !ok {
		return nil, ErrPostNotFound
	}
	view := dto.NewTrainingPostView(post, true)
	return &view, nil
}

func (s *trainingService) Create(ctx context.Context, authorEmail string, req *dto.UpsertTrainingPostRequest) (*model.TrainingPost, error) {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	record := buildTrainingPost(uuid.New().String(), authorEmail, req)
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	saved, err := s.stores.Posts.Upsert(ctx, record)
	return &saved, err
}

func (s *trainingService) Update(ctx context.Context, id, viewerEmail string, role model.Role, req *dto.UpsertTrainingPostRequest) (*model.TrainingPost, error) {
	existing, ok := s.find(ctx, id)
	if !ok {
		return nil, ErrPostNotFound
	}
	if !calendar.CanModify(existing.AuthorEmail, viewerEmail, role) {
		return nil, ErrPermissionDenied
	}
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	record := buildTrainingPost(id, existing.AuthorEmail, req)
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now()

	saved, err := s.stores.Posts.Upsert(ctx, record)
	return &saved, err
}

func (s *trainingService) Delete(ctx context.Context, id, viewerEmail string, role model.Role) error {
	existing, ok := s.find(ctx, id)
	if !ok {
		return ErrPostNotFound
	}
	if !calendar.CanModify(existing.AuthorEmail, viewerEmail, role) {
		return ErrPermissionDenied
	}
	return s.stores.Posts.Delete(ctx, id)
}

func (s *trainingService) find(ctx context.Context, id string) (model.TrainingPost, bool) {
	for _, p := range s.stores.Posts.FetchAll(ctx) {
		if p.PostID == id {
			return p, true
		}
	}
	return model.TrainingPost{}, false
}

func buildTrainingPost(id, authorEmail string, req *dto.UpsertTrainingPostRequest) model.TrainingPost {
	return model.TrainingPost{
		PostID:      id,
		Title:       req.Title,
		Author:      req.Author,
		Date:        req.Date,
		AuthorEmail: authorEmail,
		Summary:     req.Summary,
		PDFURL:      req.PDFURL,
		FileType:    req.FileType,
	}
}
