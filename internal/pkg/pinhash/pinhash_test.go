package pinhash

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "123456" {
		t.Fatal("hash must not equal the plain PIN")
	}
	if !Verify("123456", hash) {
		t.Error("Verify with correct PIN = false, want true")
	}
	if Verify("654321", hash) {
		t.Error("Verify with wrong PIN = true, want false")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same PIN are identical, want per-value salt")
	}
}
