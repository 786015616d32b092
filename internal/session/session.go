// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const (
	// suffixLen is the number of random base-36 characters in an ID.
	suffixLen = 9

	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Identity is a session token plus the moment it was created.
// It is read-only after New returns.
type Identity struct {
	ID        string
	StartedAt time.Time
}

// New creates a fresh session identity of the form
// session_<unix-millis>_<9 base36 chars>.
func New() Identity {
	now := time.Now()
	return Identity{
		ID:        NewID(now),
		StartedAt: now,
	}
}

// NewID builds a session ID for the given creation time.
func NewID(now time.Time) string {
	return "session_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + randomSuffix()
}

// Age returns how long ago the session was created.
func (i Identity) Age() time.Duration {
	return time.Since(i.StartedAt)
}

// String returns the session ID.
func (i Identity) String() string {
	return i.ID
}

func randomSuffix() string {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, suffixLen)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is gone;
			// fall back to the clock so an ID is still produced.
			n = big.NewInt(time.Now().UnixNano() % int64(len(alphabet)))
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}
