package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	signed, err := issuer.Issue("alice@example.com", []string{"admin", "provider"}, time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := issuer.Validate(signed)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.Subject != "alice@example.com" {
		t.Errorf("subject = %q, want %q", claims.Subject, "alice@example.com")
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "admin" || claims.Roles[1] != "provider" {
		t.Errorf("roles = %v, want [admin provider]", claims.Roles)
	}

	wantExpiry := time.Now().Add(time.Hour)
	if got := claims.ExpiresAt.Time; got.Before(wantExpiry.Add(-time.Minute)) || got.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiry = %v, want ~%v", got, wantExpiry)
	}
}

func TestIssueDefaultTTL(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	signed, err := issuer.Issue("bob@example.com", nil, 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := issuer.Validate(signed)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	wantExpiry := time.Now().Add(30 * time.Minute)
	if got := claims.ExpiresAt.Time; got.Before(wantExpiry.Add(-time.Minute)) || got.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiry = %v, want ~%v", got, wantExpiry)
	}
}

func TestValidateExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	signed, err := issuer.Issue("alice@example.com", nil, -time.Minute)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = issuer.Validate(signed)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Validate() error = %v, want ErrExpired", err)
	}
}

func TestValidateMalformed(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := issuer.Validate(tc.token); !errors.Is(err, ErrMalformed) {
				t.Errorf("Validate(%q) error = %v, want ErrMalformed", tc.token, err)
			}
		})
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-one", 30*time.Minute)
	other := NewIssuer("secret-two", 30*time.Minute)

	signed, err := issuer.Issue("alice@example.com", nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := other.Validate(signed); !errors.Is(err, ErrMalformed) {
		t.Errorf("Validate() with wrong secret error = %v, want ErrMalformed", err)
	}
}
