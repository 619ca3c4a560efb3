package deckcode

import (
	"encoding/base64"
	"strings"
)

var (
	toURLSafe   = strings.NewReplacer("/", "-", "=", "_")
	fromURLSafe = strings.NewReplacer("-", "/", "_", "=")
)

// encodeText is standard padded base64 with '/' and '=' substituted.
func encodeText(p []byte) string {
	return toURLSafe.Replace(base64.StdEncoding.EncodeToString(p))
}

// decodeText reverses encodeText. Any run of trailing padding is accepted.
func decodeText(s string) ([]byte, error) {
	s = strings.TrimRight(fromURLSafe.Replace(s), "=")
	return base64.RawStdEncoding.DecodeString(s)
}
