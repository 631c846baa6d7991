package logic

import (
	"errors"
	"testing"

	"github.com/mobashirsifat123/charity/internal/auth"
	"github.com/mobashirsifat123/charity/internal/config"
	"github.com/mobashirsifat123/charity/internal/model"
)

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(config.JWTConfig{Secret: "test-secret", ExpireHours: 24})
}

func TestRegisterForcesDonorRole(t *testing.T) {
	db := testDB(t)
	l := NewUserLogic(db, testTokenManager())

	// Register不接受角色参数，handler层已丢弃请求中的role字段；
	// 这里确认落库的角色是donor
	user, token, err := l.Register("Mallory", "mallory@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != model.UserRoleDonor {
		t.Errorf("user.Role = %q, want donor", user.Role)
	}
	if token == "" {
		t.Error("expected a signed token")
	}

	var stored model.User
	if err := db.First(&stored, user.Id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Role != model.UserRoleDonor {
		t.Errorf("stored role = %q, want donor", stored.Role)
	}
	if stored.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testDB(t)
	l := NewUserLogic(db, testTokenManager())

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "a@example.com", "secret123"},
		{"missing email", "Alice", "", "secret123"},
		{"missing password", "Alice", "a@example.com", ""},
		{"email without at", "Alice", "a.example.com", "secret123"},
		{"email without dot in domain", "Alice", "a@example", "secret123"},
		{"short password", "Alice", "a@example.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := l.Register(tc.userName, tc.email, tc.password)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	l := NewUserLogic(db, testTokenManager())

	if _, _, err := l.Register("Alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := l.Register("Alice Again", "alice@example.com", "secret456")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("second register: got %v, want ErrDuplicateEmail", err)
	}
}

func TestLoginGenericFailure(t *testing.T) {
	db := testDB(t)
	l := NewUserLogic(db, testTokenManager())

	if _, _, err := l.Register("Alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// 不存在的邮箱与错误的密码必须返回同一个错误，避免用户枚举
	_, _, errNoUser := l.Login("nobody@example.com", "secret123")
	_, _, errBadPassword := l.Login("alice@example.com", "wrong-password")

	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", errNoUser)
	}
	if !errors.Is(errBadPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", errBadPassword)
	}
	if errNoUser.Error() != errBadPassword.Error() {
		t.Error("error messages differ between unknown email and wrong password")
	}
}

func TestLoginSuccess(t *testing.T) {
	db := testDB(t)
	l := NewUserLogic(db, testTokenManager())

	if _, _, err := l.Register("Alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := l.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("user.Email = %q", user.Email)
	}

	claims, err := testTokenManager().Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Id != user.Id || claims.Role != "donor" {
		t.Errorf("claims = {%d %s}, want {%d donor}", claims.Id, claims.Role, user.Id)
	}
}
