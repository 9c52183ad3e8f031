package util

import "testing"

func TestHashUserKeyStable(t *testing.T) {
	a := HashUserKey("guest:abc")
	b := HashUserKey("guest:abc")
	if a != b {
		t.Fatalf("expected stable hash, got %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestContentHashVersioned(t *testing.T) {
	same := ContentHash("v1", "hello") == ContentHash("v1", "hello")
	if !same {
		t.Fatal("identical version+content must hash identically")
	}
	if ContentHash("v1", "hello") == ContentHash("v2", "hello") {
		t.Fatal("version change must change the hash")
	}
	if ContentHash("v1", "hello") == ContentHash("v1", "world") {
		t.Fatal("content change must change the hash")
	}
}
