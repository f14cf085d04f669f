package handlers

import (
	"errors"
	"net/http"

	request "nexus_recycle/internal/adapter/http/dto/request"
	response "nexus_recycle/internal/adapter/http/dto/response"
	"nexus_recycle/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves signup, the geolocation feed and logout.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// @Summary      Create the signed-in profile
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ProfileRequest  true  "payload"
// @Success      201      {object}  response.ProfileResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /session/profile [post]
func (h *SessionHandler) CreateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	draft, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateProfile(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProfile(p))
}

// @Summary      Current profile
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.ProfileResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /session/profile [get]
func (h *SessionHandler) GetProfile(c *gin.Context) {
	p, err := h.usecase.GetProfile(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// UpdateLocation applies a geolocation fix. A fix for an ended or different
// session is acknowledged with 202 and applied=false.
//
// @Summary      Apply a geolocation fix
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LocationRequest  true  "payload"
// @Success      200      {object}  response.LocationUpdateResponse
// @Success      202      {object}  response.LocationUpdateResponse  "Ignored"
// @Failure      400      {object}  pkg.HTTPError
// @Router       /session/location [put]
func (h *SessionHandler) UpdateLocation(c *gin.Context) {
	var payload request.LocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	loc, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateLocation(c.Request.Context(), payload.ProfileID, loc)
	if errors.Is(err, usecase.ErrLocationUpdateIgnored) {
		c.JSON(http.StatusAccepted, response.LocationUpdateResponse{Applied: false})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	res := response.FromProfile(p)
	c.JSON(http.StatusOK, response.LocationUpdateResponse{Applied: true, Profile: &res})
}

// @Summary      Log out
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.StatusResponse
// @Router       /session [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	err := h.usecase.Logout(c.Request.Context())
	if errors.Is(err, usecase.ErrPersistenceDeferred) {
		c.JSON(http.StatusOK, response.StatusResponse{Status: "logged_out", Warning: persistenceDeferredWarning})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: "logged_out"})
}
