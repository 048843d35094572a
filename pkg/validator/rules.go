package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// newRule builds a rule whose error carries field plus the extra key/value pairs.
func newRule(field, key, msg string, check func() bool, kv ...any) Rule {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(kv); i += 2 {
		values[kv[i].(string)] = kv[i+1]
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    "validation." + key,
			TranslationValues: values,
		},
	}
}

// RequiredString fails on "". Whitespace counts as content.
func RequiredString(field, value string) Rule {
	return newRule(field, "required", "is required", func() bool { return value != "" })
}

func MaxLenBytes(field string, value []byte, max int) Rule {
	return newRule(field, "max_bytes", fmt.Sprintf("must be at most %d bytes", max),
		func() bool { return len(value) <= max }, "max", max)
}

// RangeNum accepts min <= value <= max.
func RangeNum[T Numeric](field string, value, min, max T) Rule {
	return newRule(field, "range", fmt.Sprintf("must be between %v and %v", min, max),
		func() bool { return value >= min && value <= max }, "min", min, "max", max)
}

// ValidEmail checks the loose local@domain.tld shape: no whitespace, one @,
// a dot in the domain. It is not an RFC 5322 parser.
func ValidEmail(field, value string) Rule {
	return newRule(field, "email", "must be a valid email address",
		func() bool { return emailRegex.MatchString(value) })
}

// ValidAbsoluteURL requires a URL with both scheme and host.
func ValidAbsoluteURL(field, value string) Rule {
	return newRule(field, "url", "must be a valid absolute URL", func() bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		u, err := url.Parse(value)
		return err == nil && u.Scheme != "" && u.Host != ""
	})
}

// ValidPhone accepts an optional leading + and then ten or more digits,
// spaces or hyphens.
func ValidPhone(field, value string) Rule {
	return newRule(field, "phone", "must be a valid phone number",
		func() bool { return phoneRegex.MatchString(value) })
}

// ValidHexColor accepts #RRGGBB.
func ValidHexColor(field, value string) Rule {
	return newRule(field, "hex_color", "must be a color in #RRGGBB format",
		func() bool { return hexColorRegex.MatchString(value) })
}
