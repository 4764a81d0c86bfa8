package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignedRef is the payload carried by a download token.
type SignedRef struct {
	ID        string
	Path      string
	ExpiresAt time.Time
}

// SignedURLSigner creates and validates expiring download tokens.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedURLSigner constructs a signer with the provided secret and TTL.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SignedURLSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign returns a token of the form id.expiry.path.signature.
func (s *SignedURLSigner) Sign(id, relPath string) (string, time.Time, error) {
	if id == "" || relPath == "" {
		return "", time.Time{}, fmt.Errorf("id and path required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := s.now().Add(s.ttl).Truncate(time.Second)
	exp := strconv.FormatInt(expiresAt.Unix(), 10)
	path := base64.RawURLEncoding.EncodeToString([]byte(relPath))
	return strings.Join([]string{id, exp, path, s.mac(id, exp, path)}, "."), expiresAt, nil
}

// Verify checks the signature and expiry of token.
func (s *SignedURLSigner) Verify(token string) (SignedRef, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return SignedRef{}, fmt.Errorf("invalid token format")
	}
	id, exp, path, signature := parts[0], parts[1], parts[2], parts[3]
	if !hmac.Equal([]byte(s.mac(id, exp, path)), []byte(signature)) {
		return SignedRef{}, fmt.Errorf("invalid token signature")
	}
	unix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return SignedRef{}, fmt.Errorf("invalid token expiry")
	}
	rawPath, err := base64.RawURLEncoding.DecodeString(path)
	if err != nil {
		return SignedRef{}, fmt.Errorf("decode path: %w", err)
	}
	ref := SignedRef{ID: id, Path: string(rawPath), ExpiresAt: time.Unix(unix, 0)}
	if s.now().After(ref.ExpiresAt) {
		return SignedRef{}, fmt.Errorf("token expired")
	}
	return ref, nil
}

func (s *SignedURLSigner) mac(id, exp, path string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(id + "|" + exp + "|" + path))
	return hex.EncodeToString(mac.Sum(nil))
}
