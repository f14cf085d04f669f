package handlers

import (
	"net/http"

	response "nexus_recycle/internal/adapter/http/dto/response"
	"nexus_recycle/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ImpactHandler serves the dashboard, the transaction history and the impact report.
type ImpactHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewImpactHandler(uc usecase.ILedgerUseCase) *ImpactHandler {
	return &ImpactHandler{usecase: uc}
}

// @Summary      Home dashboard
// @Tags         impact
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *ImpactHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// @Summary      Transaction history, newest first
// @Tags         impact
// @Produce      json
// @Success      200  {array}  response.TransactionResponse
// @Router       /transactions [get]
func (h *ImpactHandler) Transactions(c *gin.Context) {
	txs, err := h.usecase.Transactions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// @Summary      Environmental impact report
// @Tags         impact
// @Produce      json
// @Success      200  {object}  response.ImpactResponse
// @Router       /impact [get]
func (h *ImpactHandler) Impact(c *gin.Context) {
	r, err := h.usecase.Report(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(r))
}
