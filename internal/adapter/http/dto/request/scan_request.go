package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImagePayload = errors.New("invalid image payload")

// ScanRequest is the JSON alternative to a multipart upload. ImageBase64 may
// be a bare base64 string or a data URL (data:image/png;base64,...).
type ScanRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type"`
}

// Decode returns the image bytes and its mime type. A data URL's mime type
// wins over MimeType.
func (r ScanRequest) Decode() ([]byte, string, error) {
	data := strings.TrimSpace(r.ImageBase64)
	mimeType := strings.TrimSpace(r.MimeType)

	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, "", ErrInvalidImagePayload
		}
		mimeType = strings.TrimSuffix(header, ";base64")
		data = payload
	}

	img, err := base64.StdEncoding.DecodeString(data)
	if err != nil || len(img) == 0 {
		return nil, "", ErrInvalidImagePayload
	}
	return img, mimeType, nil
}
