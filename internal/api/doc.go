// Package api exposes QR generator sessions, barcode classification and QR
// decoding as a JSON HTTP API on a chi router.
//
// Every response is an Envelope. Errors carry a stable code and a message
// translated into the language picked from ?lang= or Accept-Language.
// Sessions live in a session.Store and are addressed by the token returned
// from POST /api/sessions; each request holds the session lock while it runs.
package api
