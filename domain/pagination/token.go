// Package pagination holds the two continuation token encodings used by the
// catalog backends: a wrapped native cursor and a computed "lastKey|skip" token.
package pagination

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
)

const separator = "|"

// MaxSkip bounds a decodable skip. Larger values resume at 0.
const MaxSkip = math.MaxInt32

// DecodeSkip parses a "lastKey|skip" token. An empty token resumes at 0.
// A token with fewer than two segments is undefined and reported with ok=false.
// A non-numeric, negative or out of range skip resumes at 0; fractional skips
// round to the nearest integer.
func DecodeSkip(token string) (skip int, ok bool) {
	if token == "" {
		return 0, true
	}
	i := strings.LastIndex(token, separator)
	if i < 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(token[i+1:]), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n > MaxSkip {
		return 0, true
	}
	return int(math.Round(n)), true
}

// ResumeSkip is DecodeSkip with the undefined case degraded to a restart from 0.
func ResumeSkip(token string) int {
	skip, _ := DecodeSkip(token)
	return skip
}

// EncodeSkip returns the token for the page after one holding count items whose
// last identity is lastKey. A short page has no successor. A full page always
// gets a token, even when nothing follows it.
func EncodeSkip(count int, lastKey string, limit, skip int) string {
	if count == 0 || count < limit {
		return ""
	}
	return lastKey + separator + strconv.Itoa(skip+limit)
}

// NextToken builds the skip token for a page of identifiable items.
func NextToken[T interface{ Identity() string }](list []T, limit, skip int) string {
	if len(list) == 0 {
		return ""
	}
	return EncodeSkip(len(list), list[len(list)-1].Identity(), limit, skip)
}

// EncodeCursor wraps a native page state into a URL-safe token.
func EncodeCursor(state []byte) string {
	if len(state) == 0 {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(state)
}

// DecodeCursor unwraps a token produced by EncodeCursor. An empty or
// undecodable token yields nil, which restarts from the first page.
func DecodeCursor(token string) []byte {
	if token == "" {
		return nil
	}
	state, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	return state
}
