package crypto

import (
	"errors"
	"strings"
	"testing"
)

// fastParams keeps argon2 cheap in tests.
func fastParams() HashParams {
	return HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHasherHash(t *testing.T) {
	hash, err := NewHasher(DefaultHashParams()).Hash("Xk4#pq9Lm2aZ")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("Hash() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("Hash() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("Hash() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=19456,t=2,p=1" {
		t.Errorf("Hash() params = %q, want %q", parts[3], "m=19456,t=2,p=1")
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	h := NewHasher(fastParams())

	hash, err := h.Hash("Ab3defgh")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	match, err := Verify("Ab3defgh", hash)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if !match {
		t.Error("Verify() returned false for correct password")
	}

	match, err = Verify("Ab3defgX", hash)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if match {
		t.Error("Verify() returned true for wrong password")
	}
}

func TestHashAll(t *testing.T) {
	passwords := []string{"Aa1aaaa", "Bb2bbbb", "Aa1aaaa"}

	hashes, err := NewHasher(fastParams()).HashAll(passwords)
	if err != nil {
		t.Fatalf("HashAll() unexpected error: %v", err)
	}
	if len(hashes) != len(passwords) {
		t.Fatalf("HashAll() returned %d hashes, want %d", len(hashes), len(passwords))
	}
	if hashes[0] == hashes[2] {
		t.Error("HashAll() produced identical hashes for repeated password (salt should differ)")
	}
	for i, pw := range passwords {
		ok, err := Verify(pw, hashes[i])
		if err != nil || !ok {
			t.Errorf("Verify(%q, hashes[%d]) = %v, %v", pw, i, ok, err)
		}
	}
}

func TestVerifyInvalidHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "garbage", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "wrong version", encoded: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1,t=1,p=1$!!!$a2V5", wantErr: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify("password", tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
