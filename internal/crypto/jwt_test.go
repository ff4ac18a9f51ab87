package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidateTokenValid(t *testing.T) {
	token, err := GenerateToken("ops", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "ops" {
		t.Errorf("ValidateToken() Subject = %q, want %q", claims.Subject, "ops")
	}
}

func TestGenerateTokenRequiresSubject(t *testing.T) {
	if _, err := GenerateToken("", "test-secret", time.Hour); err != ErrSubjectRequired {
		t.Errorf("GenerateToken() error = %v, want %v", err, ErrSubjectRequired)
	}
}

func TestValidateTokenRejected(t *testing.T) {
	signed := func(claims Claims, secret string) string {
		t.Helper()
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("SignedString() unexpected error: %v", err)
		}
		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "ops",
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}
	}

	wrongIssuer := valid()
	wrongIssuer.Issuer = "vaultpass"
	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"vaultpass-api"}
	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noSubject := valid()
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-valid-token"},
		{name: "wrong secret", token: signed(Claims{RegisteredClaims: valid()}, "other-secret")},
		{name: "wrong issuer", token: signed(Claims{RegisteredClaims: wrongIssuer}, "test-secret")},
		{name: "wrong audience", token: signed(Claims{RegisteredClaims: wrongAudience}, "test-secret")},
		{name: "expired", token: signed(Claims{RegisteredClaims: expired}, "test-secret")},
		{name: "missing subject", token: signed(Claims{RegisteredClaims: noSubject}, "test-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, "test-secret"); err != ErrInvalidToken {
				t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}
