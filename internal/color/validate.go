package color

import (
	"fmt"
	"strconv"
	"strings"

	swerr "github.com/swatchfile/swatch/internal/errors"
)

// MaxNameLength is the longest allowed swatch name after trimming.
const MaxNameLength = 50

// ValidateName checks a user-entered swatch name and returns the trimmed
// form. Uniqueness against the rest of the collection is the service's
// concern, not this function's.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", swerr.InvalidField("name", "cannot be empty")
	}
	if len(trimmed) > MaxNameLength {
		return "", swerr.InvalidField("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	return trimmed, nil
}

// ParseChannel parses one user-entered RGB channel field. Unlike
// ClampChannel, this rejects out-of-range input instead of clamping it;
// clamping is reserved for values that already passed input validation.
func ParseChannel(field, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, swerr.InvalidField(field, "is required")
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, swerr.InvalidField(field, fmt.Sprintf("%q is not a number", value))
	}
	if n < 0 || n > 255 {
		return 0, swerr.InvalidField(field, fmt.Sprintf("%d is out of range 0-255", n))
	}

	return n, nil
}
