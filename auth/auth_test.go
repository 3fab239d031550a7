package auth_test

import (
	"testing"

	"github.com/gigfit/backend/auth"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"BEARER abc.def.ghi", "abc.def.ghi", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"abc.def.ghi", "", false},
	}
	for _, c := range cases {
		got, ok := auth.BearerToken(c.header)
		if got != c.want || ok != c.ok {
			t.Errorf("BearerToken(%q) = (%q, %v), want (%q, %v)", c.header, got, ok, c.want, c.ok)
		}
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-passphrase")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := auth.CheckPassword("s3cret-passphrase", hash); err != nil {
		t.Errorf("CheckPassword rejected the matching password: %v", err)
	}
	if err := auth.CheckPassword("wrong-passphrase", hash); err == nil {
		t.Error("CheckPassword accepted a non-matching password")
	}
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	if _, err := auth.HashPassword(""); err == nil {
		t.Error("HashPassword should reject an empty password")
	}
}
