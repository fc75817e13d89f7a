package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

// idLength is the number of base64url characters kept from the HMAC digest.
const idLength = 12

// ErrIDGeneration is returned when reading random bytes for the nonce fails.
var ErrIDGeneration = errors.New("failed to generate session id")

// IDGenerator derives short, URL-safe session identifiers.
//
// An id is HMAC-SHA256 over "<unix-ms>:<hex nonce>" keyed with a shared
// secret, base64url-encoded and truncated. Collision resistance comes from
// the random nonce, not from the secrecy of the key; the key only makes
// ids non-forgeable by clients.
type IDGenerator struct {
	secret []byte
}

// NewIDGenerator creates a generator keyed with the given secret.
func NewIDGenerator(secret string) *IDGenerator {
	return &IDGenerator{secret: []byte(secret)}
}

// Generate returns a new session id.
func (g *IDGenerator) Generate() (string, error) {
	nonce := make([]byte, 8)
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(ts + ":" + hex.EncodeToString(nonce)))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))[:idLength], nil
}
