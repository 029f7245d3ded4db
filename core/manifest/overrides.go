package manifest

import (
	"strings"

	"github.com/giuseppe/syscontainer-build/core/logger"
)

// Override is a user-supplied key/value pair that customizes a manifest
// default.
type Override struct {
	Key   string
	Value string
}

// SplitKeyValue splits a single key=value token. ok is false unless the
// token contains exactly one separator with text on both sides.
func SplitKeyValue(token string) (key, value string, ok bool) {
	parts := strings.Split(token, "=")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ParseOverrides keeps the valid key=value tokens in input order, so that a
// later duplicate key overwrites an earlier one when applied. Malformed
// tokens are recorded as warnings and skipped, never fatal.
func ParseOverrides(tokens []string, log *logger.Logger) []Override {
	overrides := []Override{}

	for _, token := range tokens {
		key, value, ok := SplitKeyValue(token)
		if !ok {
			log.LogWarn("%s not in key=value format. Skipping...", token)
			continue
		}

		overrides = append(overrides, Override{Key: key, Value: value})
	}

	return overrides
}
