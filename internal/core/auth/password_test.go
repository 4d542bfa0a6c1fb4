package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if digest == "pw1" {
		t.Fatalf("digest equals plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected self-describing bcrypt digest, got %q", digest)
	}
	if !CheckPassword("pw1", digest) {
		t.Fatalf("CheckPassword rejected the original plaintext")
	}
}

func TestCheckPassword_RejectsOtherPlaintexts(t *testing.T) {
	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	for _, wrong := range []string{"", "correct", "correct horse ", "CORRECT HORSE"} {
		if CheckPassword(wrong, digest) {
			t.Fatalf("CheckPassword accepted %q", wrong)
		}
	}
}

func TestCheckPassword_GarbageDigest(t *testing.T) {
	if CheckPassword("anything", "not-a-digest") {
		t.Fatalf("CheckPassword accepted a garbage digest")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	d1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	d2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("expected distinct salts, got identical digests")
	}
}
