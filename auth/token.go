package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken marks a token whose payload cannot be read.
var ErrInvalidToken = errors.New("auth: invalid token")

// Identity is what the front end knows about the signed-in user. It is read
// from the token payload without verifying the signature, so it is only fit
// for display; the backend authorizes every request on its own.
type Identity struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
}

// Session pairs the raw bearer token with the identity decoded from it.
type Session struct {
	Token string
	User  Identity
}

// NewSession decodes token and wraps it in a Session.
func NewSession(token string) (*Session, error) {
	id, ok := DecodeIdentity(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	return &Session{Token: token, User: id}, nil
}

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeIdentity reads {id, role} from the middle segment of a three-part
// token. It never checks the signature or expiry.
func DecodeIdentity(token string) (Identity, bool) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) < 3 {
		return Identity{}, false
	}
	raw, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return Identity{}, false
	}
	var payload struct {
		ID   json.RawMessage `json:"id"`
		Role string          `json:"role"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Identity{}, false
	}
	id, ok := parseID(payload.ID)
	if !ok {
		return Identity{}, false
	}
	return Identity{ID: id, Role: payload.Role}, true
}

// parseID accepts 5, 5.0 and "5"; a missing id is 0.
func parseID(raw json.RawMessage) (uint, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, true
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uint(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != float64(uint64(f)) {
		return 0, false
	}
	return uint(f), true
}
