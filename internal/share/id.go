package share

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

const (
	// IDLength is the number of hex characters kept from the digest.
	IDLength    = 8
	tokenLength = 16
)

// NewResultID derives the short result id from the submitted text and the
// submission time (millisecond precision). The same text submitted at two
// different milliseconds yields two ids. Collisions of the truncated digest
// are accepted.
func NewResultID(text string, now time.Time) string {
	return digest(text+"-"+strconv.FormatInt(now.UnixMilli(), 10), IDLength)
}

// Token signs a result id and score for share links.
func Token(resultID string, score int, baseURL string) string {
	return digest(resultID+"-"+strconv.Itoa(score)+"-"+baseURL, tokenLength)
}

func digest(input string, n int) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:n]
}

// ValidID reports whether id looks like a result id.
func ValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
