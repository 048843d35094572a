package barcode

import (
	"errors"
	"fmt"
)

// Category is the country-of-origin verdict for a scanned product barcode.
type Category string

const (
	India        Category = "india"
	China        Category = "china"
	UnitedStates Category = "united_states"
	Japan        Category = "japan"
	Canada       Category = "canada"
	Bangladesh   Category = "bangladesh"
	Unknown      Category = "unknown"
	NoBarcode    Category = "no_barcode"
)

// ErrUnknownCategory is returned when text does not name a known category.
var ErrUnknownCategory = errors.New("unknown barcode category")

var categories = []Category{India, China, UnitedStates, Japan, Canada, Bangladesh, Unknown, NoBarcode}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// TranslationKey is the i18n key of the user-facing verdict for c.
func (c Category) TranslationKey() string {
	return "barcode.category." + string(c)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	v := Category(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, string(text))
	}
	*c = v
	return nil
}
