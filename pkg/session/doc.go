// Package session models the state of one QR code generator form and keeps
// such sessions in memory for the HTTP API.
//
// A Session tracks the selected content type, the raw input for that type,
// the image styling and the outcome of the last validation. Its lifecycle is
// driven by a statemachine.Machine:
//
//	Editing, Ready, Error --edit-----> Editing
//	Editing, Ready, Error --generate-> Validating
//	Validating ------------valid-----> Ready
//	Validating ------------invalid---> Error
//
// Every edit (type change, input change) returns the session to Editing.
// Selecting a type resets the input to that type's default. Generate is
// accepted from Editing, Ready and Error; a valid result becomes the QR
// payload, an invalid one leaves the previous payload in place and records
// the content.ErrorKind returned by Err. Styling changes (size, colors, logo)
// never change the state or the payload.
//
// # Usage
//
//	s := session.New(session.WithLogger(log))
//	_ = s.SetType(ctx, content.Email)
//	_ = s.SetValue(ctx, "someone@example.com")
//	res, err := s.Generate(ctx)
//	if err == nil && res.OK() {
//		png, _ := qrcode.PNG(s.Options())
//	}
//
// # Storage
//
// MemoryStore keeps sessions under random UUID tokens with a sliding TTL and
// an optional background cleanup loop. Store.With grants exclusive access to
// one session for the duration of a callback, which is how concurrent HTTP
// requests share a Session that is otherwise single-owner.
package session
