package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")
	t.Setenv("ENV", "dev")

	token, err := SignJWT(Claims{Sub: "op-1", Email: "op@example.com", Tenant: "agency-1"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three segments, got %q", token)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "op-1" || claims.Tenant != "agency-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Exp-claims.Iat != int64(tokenTTL/time.Second) {
		t.Fatalf("expected default ttl, got %d", claims.Exp-claims.Iat)
	}
}

func TestVerifyJWTRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")
	t.Setenv("ENV", "dev")

	expired, err := SignJWT(Claims{Sub: "op-1", Iat: 1, Exp: 2})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	cases := map[string]string{
		"garbage":   "not-a-token",
		"expired":   expired,
		"bad_sig":   expired[:strings.LastIndex(expired, ".")] + ".AAAA",
		"two_parts": "a.b",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestSecretRequiredInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "production")
	if _, err := SignJWT(Claims{Sub: "op-1"}); err == nil {
		t.Fatalf("expected missing secret error")
	}
}
