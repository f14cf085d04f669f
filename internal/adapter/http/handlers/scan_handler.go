package handlers

import (
	"io"
	"mime"
	"net/http"
	"strings"

	request "nexus_recycle/internal/adapter/http/dto/request"
	response "nexus_recycle/internal/adapter/http/dto/response"
	"nexus_recycle/internal/usecase"
	"nexus_recycle/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errMissingImage = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Send the photo as multipart field 'image' or as image_base64", http.StatusBadRequest)

// ScanHandler serves the Smart Scan flow.
type ScanHandler struct {
	usecase usecase.IScanUseCase
}

func NewScanHandler(uc usecase.IScanUseCase) *ScanHandler {
	return &ScanHandler{usecase: uc}
}

// Analyze accepts either a multipart upload (field "image") or a JSON body
// with a base64 image.
//
// @Summary      Analyze a photo of recyclable material
// @Tags         scans
// @Accept       multipart/form-data,json
// @Produce      json
// @Param        image  formData  file  false  "photo (jpeg, png, gif or webp)"
// @Success      201    {object}  response.ScanResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      401    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Failure      422    {object}  pkg.HTTPError
// @Router       /scans [post]
func (h *ScanHandler) Analyze(c *gin.Context) {
	var (
		img      []byte
		mimeType string
		err      error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		img, mimeType, err = readMultipartImage(c)
	} else {
		var payload request.ScanRequest
		if err = c.ShouldBindJSON(&payload); err == nil {
			img, mimeType, err = payload.Decode()
		}
	}
	if err != nil {
		zap.L().Info("[scan][handler] unreadable image", zap.Error(err))
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(img)
	}

	res, err := h.usecase.Analyze(c.Request.Context(), img, mimeType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromScan(res))
}

func readMultipartImage(c *gin.Context) ([]byte, string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close() //nolint:errcheck

	// One byte over the limit lets the usecase reject oversized images.
	img, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageBytes+1))
	if err != nil {
		return nil, "", err
	}

	mimeType := ""
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			mimeType = mt
		}
	}
	return img, mimeType, nil
}

// @Summary      Active scan
// @Tags         scans
// @Produce      json
// @Success      200  {object}  response.ScanResponse
// @Failure      412  {object}  pkg.HTTPError
// @Router       /scans/active [get]
func (h *ScanHandler) Active(c *gin.Context) {
	res, err := h.usecase.Active(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromScan(res))
}

// @Summary      Discard the active scan
// @Tags         scans
// @Produce      json
// @Success      200  {object}  response.StatusResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /scans/active [delete]
func (h *ScanHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: "discarded"})
}
