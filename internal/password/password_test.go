package password_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/AlexHopeIT/notes-servise-test/internal/password"
)

func TestHash_VerifyRoundTrip(t *testing.T) {
	encoded, err := password.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := password.Verify("pw1", encoded)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("verify(p, hash(p)) = false, want true")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	encoded, err := password.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := password.Verify("pw2", encoded)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Error("verify accepted a different password")
	}
}

func TestHash_SaltedHashesDiffer(t *testing.T) {
	h1, err := password.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := password.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestHash_NeverContainsPlaintext(t *testing.T) {
	const plain = "hunter2-very-secret"
	encoded, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if strings.Contains(encoded, plain) {
		t.Error("hash contains the plaintext password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"not-a-phc-string",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	} {
		_, err := password.Verify("pw", encoded)
		if !errors.Is(err, password.ErrMalformedHash) {
			t.Errorf("Verify(%q): err = %v, want ErrMalformedHash", encoded, err)
		}
	}
}
