package utils

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var entropy = ulid.Monotonic(rand.Reader, 0)

func NewUlid() string {
	return NewUlidAt(time.Now())
}

// NewUlidAt returns a lowercase ULID stamped with t.
func NewUlidAt(t time.Time) string {
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}
