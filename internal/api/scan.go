package api

import (
	"errors"
	"image"
	"mime"
	"net/http"
	"strings"

	"github.com/nesaranaeem/qr-box/pkg/barcode"
	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/scan"
)

const imageField = "image"

type classifyRequest struct {
	Code string `json:"code"`
}

// ClassifyResponse is a barcode verdict with its localized message.
type ClassifyResponse struct {
	barcode.Result
	Message string `json:"message"`
}

// DecodeResponse describes a decoded QR code.
type DecodeResponse struct {
	Payload string        `json:"payload"`
	Type    content.Type  `json:"type"`
	Input   content.Input `json:"input"`
}

// classify accepts either a JSON body with the barcode digits or a multipart
// upload of a barcode image.
func (a *API) classify(w http.ResponseWriter, r *http.Request) {
	var res barcode.Result
	if isMultipart(r) {
		img, err := a.uploadedImage(r)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		var decodeErr error
		if res, decodeErr = scan.Classify(a.barcodes, img); decodeErr != nil {
			a.log.DebugContext(r.Context(), "no barcode decoded", logger.Error(decodeErr))
		}
	} else {
		var req classifyRequest
		if err := decodeJSON(r, &req); err != nil {
			a.fail(w, r, err)
			return
		}
		res = barcode.Inspect(strings.TrimSpace(req.Code))
	}

	a.log.InfoContext(r.Context(), "barcode classified", logger.Category(res.Category))
	a.ok(w, http.StatusOK, ClassifyResponse{
		Result:  res,
		Message: a.tr.Tc(r.Context(), res.Category.TranslationKey()),
	})
}

func (a *API) decodeQR(w http.ResponseWriter, r *http.Request) {
	img, err := a.uploadedImage(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	payload, err := a.qrcodes.Decode(img)
	if err != nil {
		if !errors.Is(err, scan.ErrNoCode) {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, Envelope{Error: &ErrorDetail{
			Code:    "no_qr_code",
			Message: a.tr.Tc(r.Context(), "scan.no_qr_code"),
		}})
		return
	}

	t, in := content.Detect(payload)
	a.ok(w, http.StatusOK, DecodeResponse{Payload: payload, Type: t, Input: in})
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

func (a *API) uploadedImage(r *http.Request) (image.Image, error) {
	if !isMultipart(r) {
		return nil, ErrBadRequest
	}
	if err := r.ParseMultipartForm(a.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errors.Join(ErrBadRequest, err)
	}
	f, _, err := r.FormFile(imageField)
	if err != nil {
		return nil, errors.Join(ErrBadRequest, err)
	}
	defer f.Close()
	return scan.DecodeImage(f)
}
