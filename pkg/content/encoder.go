package content

import (
	"github.com/nesaranaeem/qr-box/pkg/validator"
)

// ruleSet pairs the validation and encoding rules of one content type.
type ruleSet struct {
	validate func(in Input) ErrorKind
	encode   func(in Input) string
}

var ruleSets = map[Type]ruleSet{
	URL: {
		validate: single(ErrorInvalidURL, func(v string) validator.Rule {
			return validator.ValidAbsoluteURL("url", v)
		}),
		encode: rawValue,
	},
	Text: {
		validate: func(Input) ErrorKind { return ErrorNone },
		encode:   rawValue,
	},
	Email: {
		validate: single(ErrorInvalidEmail, func(v string) validator.Rule {
			return validator.ValidEmail("email", v)
		}),
		encode: rawValue,
	},
	Phone: {
		validate: single(ErrorInvalidPhone, func(v string) validator.Rule {
			return validator.ValidPhone("phone", v)
		}),
		encode: rawValue,
	},
	Contact: {
		validate: validateContact,
		encode: func(in Input) string {
			return FormatContact(in.Contact)
		},
	},
}

// Validate checks in against the rules of t. On success the result carries
// the canonical payload produced by Encode.
func Validate(t Type, in Input) Result {
	rs, ok := ruleSets[t]
	if !ok {
		return Invalid(ErrorUnsupportedType)
	}
	if kind := rs.validate(in); kind != ErrorNone {
		return Invalid(kind)
	}
	return Valid(rs.encode(in))
}

// Encode returns the canonical QR payload for in. Callers are expected to
// have validated in first; Encode never fails.
func Encode(t Type, in Input) string {
	rs, ok := ruleSets[t]
	if !ok {
		return ""
	}
	return rs.encode(in)
}

func rawValue(in Input) string {
	return in.Value
}

func single(kind ErrorKind, rule func(v string) validator.Rule) func(Input) ErrorKind {
	return func(in Input) ErrorKind {
		if err := validator.Apply(rule(in.Value)); err != nil {
			return kind
		}
		return ErrorNone
	}
}

// validateContact checks presence of every field before the email format.
func validateContact(in Input) ErrorKind {
	c := in.Contact
	if err := validator.Apply(
		validator.RequiredString("name", c.Name),
		validator.RequiredString("phone", c.Phone),
		validator.RequiredString("email", c.Email),
		validator.RequiredString("address", c.Address),
	); err != nil {
		return ErrorMissingContact
	}
	if err := validator.Apply(validator.ValidEmail("email", c.Email)); err != nil {
		return ErrorInvalidContactEmail
	}
	return ErrorNone
}
