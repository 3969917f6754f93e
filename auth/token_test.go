package auth

import (
	"encoding/base64"
	"testing"
)

func makeToken(payload string) string {
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".c2ln"
}

func TestDecodeIdentity(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   Identity
		wantOK bool
	}{
		{"admin", makeToken(`{"id":5,"role":"Admin"}`), Identity{ID: 5, Role: "Admin"}, true},
		{"quoted id", makeToken(`{"id":"12","role":"User"}`), Identity{ID: 12, Role: "User"}, true},
		{"missing id", makeToken(`{"role":"User"}`), Identity{Role: "User"}, true},
		{"padded segment", "a." + base64.URLEncoding.EncodeToString([]byte(`{"id":1}`)) + ".b", Identity{ID: 1}, true},
		{"two segments", "a." + base64.RawURLEncoding.EncodeToString([]byte(`{"id":1}`)), Identity{}, false},
		{"one segment", "opaque", Identity{}, false},
		{"empty", "", Identity{}, false},
		{"not base64", "a.!!!.b", Identity{}, false},
		{"not json", makeToken(`not json`), Identity{}, false},
		{"negative id", makeToken(`{"id":-1}`), Identity{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeIdentity(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("DecodeIdentity() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DecodeIdentity() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	tok := makeToken(`{"id":5,"role":"Admin"}`)
	s, err := NewSession(tok)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Token != tok || s.User.ID != 5 || s.User.Role != "Admin" {
		t.Errorf("unexpected session %+v", s)
	}

	if _, err := NewSession("a.b"); err != ErrInvalidToken {
		t.Errorf("NewSession(two segments) err = %v, want ErrInvalidToken", err)
	}
}
