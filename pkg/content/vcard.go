package content

import (
	"errors"
	"strings"

	"github.com/emersion/go-vcard"
)

const (
	vcardBegin   = "BEGIN:VCARD"
	vcardVersion = "VERSION:3.0"
	vcardEnd     = "END:VCARD"
)

// ErrNotContact is returned when a payload is not a contact card.
var ErrNotContact = errors.New("payload is not a contact card")

// FormatContact renders c as the fixed-field contact card embedded in QR payloads.
// Field values are inserted verbatim; reserved vCard characters are not escaped.
func FormatContact(c ContactFields) string {
	var b strings.Builder
	b.WriteString(vcardBegin + "\n")
	b.WriteString(vcardVersion + "\n")
	b.WriteString("FN:" + c.Name + "\n")
	b.WriteString("TEL:" + c.Phone + "\n")
	b.WriteString("EMAIL:" + c.Email + "\n")
	b.WriteString("ADR:;;" + c.Address + "\n")
	b.WriteString(vcardEnd)
	return b.String()
}

// IsContactCard reports whether payload looks like a contact card.
func IsContactCard(payload string) bool {
	p := strings.TrimSpace(payload)
	return len(p) >= len(vcardBegin) && strings.EqualFold(p[:len(vcardBegin)], vcardBegin)
}

// ParseContact reads the contact fields back out of a contact card payload.
// Cards produced by other encoders are accepted as long as they are well formed;
// the address is the first ADR property minus its PO box and extended components.
func ParseContact(payload string) (ContactFields, error) {
	if !IsContactCard(payload) {
		return ContactFields{}, ErrNotContact
	}

	card, err := vcard.NewDecoder(strings.NewReader(payload)).Decode()
	if err != nil {
		return ContactFields{}, errors.Join(ErrNotContact, err)
	}

	return ContactFields{
		Name:    card.Value(vcard.FieldFormattedName),
		Phone:   card.Value(vcard.FieldTelephone),
		Email:   card.Value(vcard.FieldEmail),
		Address: streetAddress(card.Value(vcard.FieldAddress)),
	}, nil
}

// streetAddress extracts everything after the PO box and extended address
// components. Our own cards do not escape ';', so the rest is kept whole.
func streetAddress(adr string) string {
	parts := strings.SplitN(adr, ";", 3)
	if len(parts) < 3 {
		return adr
	}
	return parts[2]
}
