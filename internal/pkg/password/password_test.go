package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("admin123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "admin123" {
		t.Fatalf("expected password to be hashed")
	}
	if !Verify("admin123", hash) {
		t.Errorf("expected hash to verify against original password")
	}
	if Verify("wrong-password", hash) {
		t.Errorf("expected wrong password to fail verification")
	}
}
