// Package content validates typed user input and turns it into the canonical
// string a QR encoder consumes.
//
// Five content types are supported: URL, Text, Email, Phone and Contact. Each
// type owns one validation rule set and one encoding rule, kept together in a
// table so that every type is handled in exactly one place.
//
//	res := content.Validate(content.Email, content.ValueInput("a@b.com"))
//	if !res.OK() {
//	    // res.Kind is an ErrorKind; translate it with res.Kind.TranslationKey()
//	}
//	payload := res.Payload
//
// Validation failures are returned as data inside Result, never as Go errors.
//
// Contact input is rendered as a fixed-field contact card (FormatContact) and
// can be read back with ParseContact. Detect goes the other way for scanned
// payloads, picking the most specific type that accepts them.
package content
