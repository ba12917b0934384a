package security

import (
	"testing"
	"time"

	"tutorbuddy/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-1", models.RoleGuardian)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != models.RoleGuardian {
		t.Errorf("claims = %s/%s, want user-1/guardian", claims.UserID, claims.Role)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("user-1", models.RoleChild)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue("user-1", models.RoleChild)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := issuer.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify of expired token = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not.a.token"); err != ErrInvalidToken {
		t.Errorf("Verify of garbage = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("password stored in the clear")
	}

	if !CheckPassword(hash, "correct horse battery") {
		t.Error("matching password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d denied inside the budget", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request over budget allowed")
	}

	// a different client has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("fresh client denied")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request in window allowed")
	}

	time.Sleep(5 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("request after window reset denied")
	}
}
