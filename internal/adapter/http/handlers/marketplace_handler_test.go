package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus_recycle/internal/adapter/http/handlers/mocks"
	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/domain/ranking"
	"nexus_recycle/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func board() usecase.BuyerBoard {
	dist, weight, payout := 1.4, 3.0, 15.6
	return usecase.BuyerBoard{
		Mode:      ranking.ModeClosest,
		Material:  "Copper",
		Reference: entities.Coordinates{Lat: 37.7749, Lng: -122.4194},
		Quotes: []usecase.QuoteView{{
			BuyerQuote:        entities.BuyerQuote{ID: "b2", BuyerName: "MetalWorks Ltd", Material: "Copper", RatePerKg: 5.2, Location: "Industrial Park"},
			DistanceKm:        &dist,
			EstimatedWeightKg: &weight,
			EstimatedPayout:   &payout,
		}},
	}
}

func TestMarketplaceHandler_FindBuyers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMarketplaceUseCase(ctrl)
		h := NewMarketplaceHandler(uc)

		r := gin.New()
		r.GET("/v1/buyers", h.FindBuyers)

		req := httptest.NewRequest(http.MethodGet, "/v1/buyers?sort=cheapest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMarketplaceUseCase(ctrl)
		h := NewMarketplaceHandler(uc)

		r := gin.New()
		r.GET("/v1/buyers", h.FindBuyers)

		req := httptest.NewRequest(http.MethodGet, "/v1/buyers?refresh=maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to highest without refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMarketplaceUseCase(ctrl)
		h := NewMarketplaceHandler(uc)

		uc.EXPECT().FindBuyers(gomock.Any(), ranking.ModeHighest, false).Return(board(), nil)

		r := gin.New()
		r.GET("/v1/buyers", h.FindBuyers)

		req := httptest.NewRequest(http.MethodGet, "/v1/buyers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("closest with refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMarketplaceUseCase(ctrl)
		h := NewMarketplaceHandler(uc)

		uc.EXPECT().FindBuyers(gomock.Any(), ranking.ModeClosest, true).Return(board(), nil)

		r := gin.New()
		r.GET("/v1/buyers", h.FindBuyers)

		req := httptest.NewRequest(http.MethodGet, "/v1/buyers?sort=Closest&refresh=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Sort   string `json:"sort"`
			Quotes []struct {
				ID              string   `json:"id"`
				EstimatedPayout *float64 `json:"estimated_payout"`
			} `json:"quotes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got.Sort != "closest" || len(got.Quotes) != 1 || got.Quotes[0].EstimatedPayout == nil || *got.Quotes[0].EstimatedPayout != 15.6 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("errors are mapped", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrNoActiveSession, http.StatusUnauthorized},
			{usecase.ErrLocationUnavailable, http.StatusPreconditionFailed},
			{usecase.ErrDiscoveryFailed, http.StatusBadGateway},
			{usecase.ErrStaleDiscovery, http.StatusConflict},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIMarketplaceUseCase(ctrl)
			h := NewMarketplaceHandler(uc)

			uc.EXPECT().FindBuyers(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.BuyerBoard{}, tc.err)

			r := gin.New()
			r.GET("/v1/buyers", h.FindBuyers)

			req := httptest.NewRequest(http.MethodGet, "/v1/buyers", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(`"code"`)) {
				t.Fatalf("expected error body, got %s", w.Body.String())
			}
			ctrl.Finish()
		}
	})
}
