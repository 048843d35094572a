// Package scan decodes barcodes and QR codes from still images using
// github.com/makiuchi-d/gozxing.
//
// NewBarcodeDecoder reads the retail UPC/EAN family whose GS1 prefix the
// barcode package classifies; NewQRDecoder reads QR codes produced by the
// qrcode package or any other generator. Classify chains a decoder with
// barcode.Inspect and maps every decode failure to barcode.NoBarcode.
package scan
