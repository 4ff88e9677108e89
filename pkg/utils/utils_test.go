package utils

import "testing"

func TestGenerateId(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := GenerateId()
		if len(id) != 7 {
			t.Fatalf("id length = %d, want 7: %q", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestCryptAndVerify(t *testing.T) {
	hash, err := Crypt("secret")
	if err != nil {
		t.Fatalf("Crypt: %v", err)
	}
	if hash == "secret" {
		t.Fatal("password stored in plain text")
	}

	if _, ok := VerifyPassword("secret", hash); !ok {
		t.Error("correct password rejected")
	}
	if _, ok := VerifyPassword("wrong", hash); ok {
		t.Error("wrong password accepted")
	}
}
