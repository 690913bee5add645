package schema

import (
	"encoding/hex"
	"strings"
	"unicode"

	"xroad/internal/errors"
	"xroad/pkg/exception"
)

// FormatHex renders a binary value as lowercase hex.
func FormatHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ParseHex decodes hex text, ignoring any whitespace inside it.
func ParseHex(text string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errors.Wrapf(exception.ErrParse, "hex %q: %s", text, err.Error())
	}
	return b, nil
}
