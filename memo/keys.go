package memo

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// FoldCase canonicalizes string keys case-insensitively, so "ABC" and "abc"
// share one table entry.
func FoldCase(s string) string { return strings.ToLower(s) }

// Digest canonicalizes a string key to its xxhash digest so the table retains
// eight bytes per key instead of the full text. Distinct keys that collide
// alias the same entry; reserve this for large keys where that trade is
// acceptable.
func Digest(s string) uint64 { return xxhash.Sum64String(s) }
