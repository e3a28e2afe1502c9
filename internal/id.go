package internal

import (
	"math/rand/v2"
	"strings"
)

const (
	sessionPrefix  = "s-"
	sessionCharset = "0123456789abcdefghijklmnopqrstuvwxyz"
	sessionLength  = 8
)

// SessionID returns a short random identifier, such as "s-k3v9x0qa", used to correlate the log
// records of a retry session. It's not guaranteed to be unique.
func SessionID() string {
	var b strings.Builder
	b.Grow(len(sessionPrefix) + sessionLength)
	b.WriteString(sessionPrefix)
	for range sessionLength {
		b.WriteByte(sessionCharset[rand.IntN(len(sessionCharset))])
	}
	return b.String()
}
