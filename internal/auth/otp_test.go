package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := newCode()
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != codeDigits {
			t.Fatalf("code %q has %d digits, want %d", code, len(code), codeDigits)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("20 draws produced a single code; generator is not random")
	}
}

func TestCodeHashRoundTrip(t *testing.T) {
	code, err := newCode()
	if err != nil {
		t.Fatal(err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if bcrypt.CompareHashAndPassword(hashed, []byte(code)) != nil {
		t.Fatal("hash does not verify its own code")
	}
	if bcrypt.CompareHashAndPassword(hashed, []byte("000000")) == nil && code != "000000" {
		t.Fatal("hash verified a wrong code")
	}
}
