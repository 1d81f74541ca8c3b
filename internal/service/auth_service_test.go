package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-0123456789",
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: 168 * time.Hour,
			AdminEmail:      "namdol01@sc2.gyo6.net",
			AdminPassword:   "bootstrap-pw",
		},
	}
}

func newAuthService(env *testEnv) AuthService {
	cfg := testAuthConfig()
	return NewAuthService(cfg, env.stores, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
}

func registerUser(t *testing.T, env *testEnv, email, name, password string, role model.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	env.users.items = append(env.users.items, model.User{
		Email: email, Name: name, Role: role, PasswordHash: string(hash),
	})
}

func TestLoginBootstrapAdmin(t *testing.T) {
	svc := newAuthService(newTestEnv())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "namdol01@sc2.gyo6.net", Password: "bootstrap-pw",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Role != string(model.RoleAdmin) {
		t.Errorf("role = %q, want admin", resp.User.Role)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("token pair missing")
	}
}

func TestLoginBootstrapAdminWrongPassword(t *testing.T) {
	svc := newAuthService(newTestEnv())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "namdol01@sc2.gyo6.net", Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRegisteredUser(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "kim@sc2.gyo6.net", "김교사", "pw-12345678", model.RoleUser)
	svc := newAuthService(env)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "kim@sc2.gyo6.net", Password: "pw-12345678",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Name != "김교사" || resp.User.Role != string(model.RoleUser) {
		t.Errorf("user block = %+v", resp.User)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newTestEnv())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@sc2.gyo6.net", Password: "pw",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSurvivesRemoteOutageViaCache(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "kim@sc2.gyo6.net", "김교사", "pw-12345678", model.RoleUser)
	svc := newAuthService(env)

	// Warm the cache while the remote is reachable.
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "kim@sc2.gyo6.net", Password: "pw-12345678",
	}); err != nil {
		t.Fatal(err)
	}

	env.users.down = true

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "kim@sc2.gyo6.net", Password: "pw-12345678",
	})
	if err != nil {
		t.Fatalf("cached credentials should still verify, got %v", err)
	}
	if resp.User.Name != "김교사" {
		t.Errorf("user block = %+v", resp.User)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	cfg := testAuthConfig()
	mgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, newTestEnv().stores, mgr, nil, zap.NewNop())

	access, err := mgr.GenerateAccessToken("kim@sc2.gyo6.net", "user")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: access}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshIssuesAccessToken(t *testing.T) {
	cfg := testAuthConfig()
	mgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, newTestEnv().stores, mgr, nil, zap.NewNop())

	refresh, err := mgr.GenerateRefreshToken("kim@sc2.gyo6.net", "user")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: refresh})
	if err != nil {
		t.Fatal(err)
	}

	claims, err := mgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenType != "access" || claims.Email != "kim@sc2.gyo6.net" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "kim@sc2.gyo6.net", "김교사", "old-password", model.RoleUser)
	svc := newAuthService(env)

	err := svc.ChangePassword(context.Background(), "kim@sc2.gyo6.net", &dto.ChangePasswordRequest{
		OldPassword: "old-password", NewPassword: "new-password",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "kim@sc2.gyo6.net", Password: "new-password",
	}); err != nil {
		t.Errorf("login with the new password failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "kim@sc2.gyo6.net", Password: "old-password",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password should no longer work")
	}
}

func TestChangePasswordWrongOld(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "kim@sc2.gyo6.net", "김교사", "old-password", model.RoleUser)
	svc := newAuthService(env)

	err := svc.ChangePassword(context.Background(), "kim@sc2.gyo6.net", &dto.ChangePasswordRequest{
		OldPassword: "nope", NewPassword: "new-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePasswordBootstrapAdmin(t *testing.T) {
	svc := newAuthService(newTestEnv())

	err := svc.ChangePassword(context.Background(), "namdol01@sc2.gyo6.net", &dto.ChangePasswordRequest{
		OldPassword: "bootstrap-pw", NewPassword: "new-password",
	})
	if !errors.Is(err, ErrBootstrapAccount) {
		t.Fatalf("err = %v, want ErrBootstrapAccount", err)
	}
}
