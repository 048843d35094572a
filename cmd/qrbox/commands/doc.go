// Package commands implements the qrbox command line: barcode classification,
// barcode scanning, QR encoding and decoding, and the HTTP server.
package commands
