// application/serviceimpl/auth_service_test.go
package serviceimpl

import (
	"errors"
	"testing"

	"github.com/driftchat/gofiber-dm-api/domain/service"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, "test-secret")

	user, token, err := svc.Register("Alice", "Alice@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized lowercase", user.Email)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in the clear")
	}
	if token == "" {
		t.Fatal("no token issued on register")
	}

	verified, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if verified != user.ID {
		t.Errorf("token subject = %s, want %s", verified, user.ID)
	}

	loggedIn, loginToken, err := svc.Login("alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != user.ID || loginToken == "" {
		t.Error("login returned wrong user or empty token")
	}
}

func TestRegisterValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, "test-secret")

	cases := []struct {
		name, email, password string
	}{
		{"", "a@example.com", "hunter22"},
		{"Alice", "", "hunter22"},
		{"Alice", "a@example.com", "short"},
	}
	for _, tc := range cases {
		if _, _, err := svc.Register(tc.name, tc.email, tc.password); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("Register(%q, %q, %q): err = %v, want ErrInvalidInput", tc.name, tc.email, tc.password, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, "test-secret")

	if _, _, err := svc.Register("Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Register("Alice Again", "alice@example.com", "hunter22"); !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, "test-secret")

	if _, _, err := svc.Register("Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login("alice@example.com", "wrong-password"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "hunter22"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeStore(), "test-secret")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.VerifyToken(token); !errors.Is(err, service.ErrNotAuthorized) {
			t.Errorf("VerifyToken(%q): err = %v, want ErrNotAuthorized", token, err)
		}
	}

	// A token signed under a different secret fails verification.
	other := NewAuthService(newFakeStore(), "other-secret")
	_, token, err := other.Register("Mallory", "mallory@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("foreign-secret token: err = %v, want ErrNotAuthorized", err)
	}
}
