package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
)

var (
	ErrUserNotFound = errors.New("사용자를 찾을 수 없습니다")
	ErrEmailTaken   = errors.New("이미 등록된 이메일입니다")
)

// Bulk-registered accounts start with this password; it is expected to be
// changed after first login.
const csvInitialPassword = "dasu1234!"

// CSVTemplate is the downloadable skeleton for bulk registration.
const CSVTemplate = "email,name,role\nhong@sc2.gyo6.net,홍길동,user\nkim@sc2.gyo6.net,김교사,admin\n"

// UserService manages registered accounts: listing, single registration,
// CSV bulk registration and removal. The bootstrap admin lives in config
// and never passes through here.
type UserService interface {
	List(ctx context.Context) (*dto.UserListResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	Delete(ctx context.Context, email string) error
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportUsersResult, error)
}

type userService struct {
	stores *Stores
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(stores *Stores, logger *zap.Logger) UserService {
	return &userService{stores: stores, logger: logger}
}

func (s *userService) List(ctx context.Context) (*dto.UserListResponse, error) {
	users := s.stores.Users.FetchAll(ctx)
	items := make([]dto.UserInfo, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserInfo{Email: u.Email, Name: u.Name, Role: string(u.Role)})
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	if s.exists(ctx, req.Email) {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, err
	}

	record := model.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         model.NormalizeRole(req.Role),
		PasswordHash: string(hash),
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	saved, err := s.stores.Users.Upsert(ctx, record)
	return &saved, err
}

func (s *userService) Delete(ctx context.Context, email string) error {
	if !s.exists(ctx, email) {
		return ErrUserNotFound
	}
	return s.stores.Users.Delete(ctx, email)
}

// ImportCSV bulk-registers accounts from "email, name, role" lines. A
// header line is auto-detected and skipped, malformed lines are skipped,
// and already-registered emails are counted but not re-inserted, so the
// same file can be imported twice without creating duplicates.
func (s *userService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportUsersResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	registered := make(map[string]bool)
	for _, u := range s.stores.Users.FetchAll(ctx) {
		registered[u.Email] = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(csvInitialPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, err
	}

	result := &dto.ImportUsersResult{}
	var degraded bool
	first := true
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			continue
		}

		if first {
			first = false
			if isCSVHeader(fields) {
				continue
			}
		}

		email, name, role, ok := parseUserLine(fields)
		if !ok {
			result.Skipped++
			continue
		}
		if registered[email] {
			result.Duplicates++
			continue
		}

		record := model.User{
			Email:        email,
			Name:         name,
			Role:         model.NormalizeRole(role),
			PasswordHash: string(hash),
		}
		record.CreatedAt = time.Now()
		record.UpdatedAt = record.CreatedAt

		if _, err := s.stores.Users.Upsert(ctx, record); err != nil {
			degraded = true
		}
		registered[email] = true
		result.Imported++
	}

	if degraded {
		return result, errs.ErrRemoteDegraded
	}
	return result, nil
}

func (s *userService) exists(ctx context.Context, email string) bool {
	for _, u := range s.stores.Users.FetchAll(ctx) {
		if u.Email == email {
			return true
		}
	}
	return false
}

func isCSVHeader(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	head := strings.ToLower(strings.TrimSpace(fields[0]))
	return head == "email" || head == "이메일"
}

func parseUserLine(fields []string) (email, name, role string, ok bool) {
	if len(fields) < 2 {
		return "", "", "", false
	}
	email = strings.TrimSpace(fields[0])
	name = strings.TrimSpace(fields[1])
	if len(fields) > 2 {
		role = strings.TrimSpace(fields[2])
	}
	if email == "" || name == "" || !strings.Contains(email, "@") {
		return "", "", "", false
	}
	return email, name, role, true
}
