package handlers

import (
	"errors"
	"net/http"

	request "nexus_recycle/internal/adapter/http/dto/request"
	response "nexus_recycle/internal/adapter/http/dto/response"
	"nexus_recycle/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TradeHandler drives the negotiation for the active scan.
type TradeHandler struct {
	usecase usecase.ITradeUseCase
}

func NewTradeHandler(uc usecase.ITradeUseCase) *TradeHandler {
	return &TradeHandler{usecase: uc}
}

// @Summary      Current negotiation
// @Tags         trades
// @Produce      json
// @Success      200  {object}  response.NegotiationResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /trades/negotiation [get]
func (h *TradeHandler) Current(c *gin.Context) {
	n, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

// @Summary      Select a buyer quote
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SelectQuoteRequest  true  "payload"
// @Success      200      {object}  response.NegotiationResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      412      {object}  pkg.HTTPError
// @Router       /trades/negotiation/quote [post]
func (h *TradeHandler) SelectQuote(c *gin.Context) {
	var payload request.SelectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	n, err := h.usecase.SelectQuote(c.Request.Context(), payload.QuoteID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

// @Summary      Cancel the selection
// @Tags         trades
// @Produce      json
// @Success      200  {object}  response.NegotiationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /trades/negotiation/quote [delete]
func (h *TradeHandler) CancelSelection(c *gin.Context) {
	n, err := h.usecase.CancelSelection(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

// Confirm settles the selected quote. When the ledger could not be stored the
// trade still succeeds and the response carries a warning.
//
// @Summary      Confirm the selected quote
// @Tags         trades
// @Produce      json
// @Success      201  {object}  response.ConfirmResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /trades/negotiation/confirm [post]
func (h *TradeHandler) Confirm(c *gin.Context) {
	tx, err := h.usecase.Confirm(c.Request.Context())
	if err != nil && !errors.Is(err, usecase.ErrPersistenceDeferred) {
		writeError(c, err)
		return
	}

	res := response.ConfirmResponse{Transaction: response.FromTransaction(tx)}
	if err != nil {
		res.Warning = persistenceDeferredWarning
	}
	c.JSON(http.StatusCreated, res)
}
