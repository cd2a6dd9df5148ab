package domain

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Entity kinds used in opaque keys.
const (
	KindConference = "conference"
	KindSession    = "session"
	KindSpeaker    = "speaker"
)

// ErrInvalidKey is returned when an opaque key cannot be decoded or names a
// different entity kind than expected.
var ErrInvalidKey = errors.New("invalid key")

// EncodeKey returns an opaque, URL-safe token for an entity id. Callers never
// see raw ids; every id crossing the API boundary goes through here.
func EncodeKey(kind, id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + id))
}

// DecodeKey reverses EncodeKey, checking the token names the expected kind.
func DecodeKey(kind, token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidKey
	}
	k, id, ok := strings.Cut(string(raw), "|")
	if !ok || k != kind || id == "" {
		return "", ErrInvalidKey
	}
	return id, nil
}
