package handlers

import (
	"net/http"
	"strconv"

	response "nexus_recycle/internal/adapter/http/dto/response"
	"nexus_recycle/internal/domain/ranking"
	"nexus_recycle/internal/usecase"
	"nexus_recycle/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSort    = pkg.NewDomainErrorSimple("INVALID_SORT", "sort must be one of highest, closest or material", http.StatusBadRequest)
	errInvalidRefresh = pkg.NewDomainErrorSimple("INVALID_REQUEST", "refresh must be a boolean", http.StatusBadRequest)
)

type MarketplaceHandler struct {
	usecase usecase.IMarketplaceUseCase
}

func NewMarketplaceHandler(uc usecase.IMarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{usecase: uc}
}

// FindBuyers lists buyers near the user, ranked by ?sort=highest|closest|material.
// ?refresh=true discards the cached list.
//
// @Summary      Buyers near the user
// @Tags         marketplace
// @Produce      json
// @Param        sort     query     string  false  "ranking"  Enums(highest, closest, material)
// @Param        refresh  query     bool    false  "discard the cached list"
// @Success      200      {object}  response.BuyerBoardResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      412      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /marketplace/buyers [get]
func (h *MarketplaceHandler) FindBuyers(c *gin.Context) {
	mode, err := ranking.ParseMode(c.Query("sort"))
	if err != nil {
		c.JSON(errInvalidSort.HTTPStatus, errInvalidSort.ToHTTPError())
		return
	}

	refresh := false
	if v := c.Query("refresh"); v != "" {
		refresh, err = strconv.ParseBool(v)
		if err != nil {
			c.JSON(errInvalidRefresh.HTTPStatus, errInvalidRefresh.ToHTTPError())
			return
		}
	}

	board, err := h.usecase.FindBuyers(c.Request.Context(), mode, refresh)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuyerBoard(board))
}
