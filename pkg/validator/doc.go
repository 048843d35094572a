// Package validator holds the small rule set behind content and style checks.
//
// A Rule pairs a deferred Check with a ValidationError that carries a
// translation key. Apply runs rules and returns ValidationErrors, which
// matches ErrValidationFailed:
//
//	err := validator.Apply(
//		validator.RequiredString("name", c.Name),
//		validator.ValidEmail("email", c.Email),
//	)
//	if verrs, ok := validator.AsErrors(err); ok {
//		_ = verrs.Fields()
//	}
//
// Patterns are compiled at init; rules are safe for concurrent use.
package validator
