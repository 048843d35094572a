// Package barcode classifies decoded product barcodes by the country-of-origin
// range of their GS1 prefix.
//
// Classification is a pure function of the digit string:
//
//	barcode.Classify("8901234567890") // barcode.India
//	barcode.Classify("")              // barcode.NoBarcode
//
// Prefix rules are held in an ordered table and evaluated first-match-wins, so
// adding a category is a matter of inserting a Rule at the right position.
// Image decoding is not part of this package; see pkg/scan.
package barcode
