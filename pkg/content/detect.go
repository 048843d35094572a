package content

import (
	"github.com/nesaranaeem/qr-box/pkg/validator"
)

// Detect maps a decoded QR payload back to the most specific content type
// whose rules accept it, in the order Contact, URL, Email, Phone, Text.
// The returned Input re-encodes to payload for every type but Contact, where
// the card is re-rendered in canonical form.
func Detect(payload string) (Type, Input) {
	if IsContactCard(payload) {
		if c, err := ParseContact(payload); err == nil {
			return Contact, ContactInput(c)
		}
	}

	checks := []struct {
		t    Type
		rule validator.Rule
	}{
		{URL, validator.ValidAbsoluteURL("url", payload)},
		{Email, validator.ValidEmail("email", payload)},
		{Phone, validator.ValidPhone("phone", payload)},
	}
	for _, c := range checks {
		if validator.Apply(c.rule) == nil {
			return c.t, ValueInput(payload)
		}
	}

	return Text, ValueInput(payload)
}
