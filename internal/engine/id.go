package engine

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// generateID returns a 12-character hex session ID, falling back to a
// timestamp if the system RNG is unavailable.
func generateID() string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "s" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return hex.EncodeToString(b[:])
}
