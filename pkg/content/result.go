package content

// ErrorKind identifies why input failed validation. The zero value means no error.
type ErrorKind string

const (
	ErrorNone                ErrorKind = ""
	ErrorInvalidURL          ErrorKind = "invalid_url_format"
	ErrorInvalidEmail        ErrorKind = "invalid_email_format"
	ErrorInvalidPhone        ErrorKind = "invalid_phone_format"
	ErrorMissingContact      ErrorKind = "missing_contact_field"
	ErrorInvalidContactEmail ErrorKind = "invalid_contact_email"

	// ErrorEmptyPayload is raised by the session, never by Validate: a valid but
	// empty payload cannot be handed to the QR renderer. Whitespace is a payload.
	ErrorEmptyPayload ErrorKind = "empty_payload"

	// ErrorUnsupportedType is returned for a Type outside the declared set.
	ErrorUnsupportedType ErrorKind = "unsupported_type"
)

var defaultMessages = map[ErrorKind]string{
	ErrorInvalidURL:          "Invalid URL format",
	ErrorInvalidEmail:        "Invalid email format",
	ErrorInvalidPhone:        "Invalid phone number format",
	ErrorMissingContact:      "All fields are required",
	ErrorInvalidContactEmail: "Invalid email format in contact information",
	ErrorEmptyPayload:        "Content cannot be empty",
	ErrorUnsupportedType:     "Unsupported content type",
}

func (k ErrorKind) String() string {
	return string(k)
}

// TranslationKey is the i18n key of the user-facing message for k.
func (k ErrorKind) TranslationKey() string {
	if k == ErrorNone {
		return ""
	}
	return "content.error." + string(k)
}

// Message is the English fallback used when no translation is available.
func (k ErrorKind) Message() string {
	return defaultMessages[k]
}

// Result is the outcome of Validate: either a payload or an ErrorKind.
type Result struct {
	Payload string    `json:"payload"`
	Kind    ErrorKind `json:"error,omitempty"`
}

// Valid builds a successful result.
func Valid(payload string) Result {
	return Result{Payload: payload}
}

// Invalid builds a failed result carrying kind.
func Invalid(kind ErrorKind) Result {
	return Result{Kind: kind}
}

// OK reports whether the result is Valid.
func (r Result) OK() bool {
	return r.Kind == ErrorNone
}
