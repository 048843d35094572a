package content

import (
	"errors"
	"fmt"
	"strings"
)

// Type selects the validation and encoding rules applied to user input.
type Type string

const (
	URL     Type = "url"
	Text    Type = "text"
	Email   Type = "email"
	Phone   Type = "phone"
	Contact Type = "contact"
)

// ErrUnknownType is returned by ParseType for names outside the Type set.
var ErrUnknownType = errors.New("unknown content type")

// types is the order content types are offered to the user.
var types = []Type{URL, Text, Contact, Email, Phone}

// Types lists every content type in presentation order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// ParseType resolves a content type name case-insensitively.
func ParseType(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func (t Type) String() string {
	return string(t)
}

func (t Type) Valid() bool {
	_, ok := ruleSets[t]
	return ok
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ContactFields is the business-card input of a Contact payload.
type ContactFields struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Input is the raw, type-specific user input. Value is used by every type
// except Contact, which reads Contact.
type Input struct {
	Value   string        `json:"value,omitempty"`
	Contact ContactFields `json:"contact,omitzero"`
}

// ValueInput is a shorthand for single-field input.
func ValueInput(v string) Input {
	return Input{Value: v}
}

// ContactInput is a shorthand for Contact input.
func ContactInput(c ContactFields) Input {
	return Input{Contact: c}
}
