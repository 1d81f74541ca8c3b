package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/kvcache"
)

var (
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	ErrInvalidToken       = errors.New("토큰이 유효하지 않습니다")
	ErrBootstrapAccount   = errors.New("환경설정 관리자 계정은 변경할 수 없습니다")
)

// AuthService handles login, token lifecycle and password changes.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	ChangePassword(ctx context.Context, email string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	stores *Stores
	jwtMgr *jwt.Manager
	cache  *kvcache.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(
	cfg *config.Config,
	stores *Stores,
	jwtMgr *jwt.Manager,
	cache *kvcache.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		stores: stores,
		jwtMgr: jwtMgr,
		cache:  cache,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. bootstrap admin: configured out-of-band, matched before any
	// table lookup, never present in registered_users
	if req.Email == s.cfg.Auth.AdminEmail {
		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Auth.AdminPassword)) != 1 {
			return nil, ErrInvalidCredentials
		}
		return s.issueTokens(req.Email, "관리자", string(model.RoleAdmin))
	}

	// 2. registered account
	user, ok := s.findUser(ctx, req.Email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user.Email, user.Name, string(user.Role))
}

func (s *authService) issueTokens(email, name, role string) (*dto.LoginResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(email, role)
	if err != nil {
		s.logger.Error("access token generation failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(email, role)
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.UserInfo{Email: email, Name: name, Role: role},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}
	if revoked, _ := s.cache.IsBlacklisted(ctx, claims.ID); revoked {
		return nil, ErrInvalidToken
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(claims.Email, claims.Role)
	if err != nil {
		s.logger.Error("access token generation failed", zap.Error(err))
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout revokes the presented token for its remaining lifetime. Without a
// cache the revocation is a no-op and the token simply ages out.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.cache.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("token revocation failed", zap.Error(err))
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, email string, req *dto.ChangePasswordRequest) error {
	if email == s.cfg.Auth.AdminEmail {
		return ErrBootstrapAccount
	}

	user, ok := s.findUser(ctx, email)
	if !ok {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()

	_, err = s.stores.Users.Upsert(ctx, user)
	return err
}

func (s *authService) findUser(ctx context.Context, email string) (model.User, bool) {
	for _, u := range s.stores.Users.FetchAll(ctx) {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}
