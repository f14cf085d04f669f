package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nexus_recycle/docs"
	"nexus_recycle/internal/adapter/http/handlers/mocks"
	"nexus_recycle/internal/config"
	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
	gin.SetMode(gin.TestMode)
}

type mockDeps struct {
	session *mocks.MockISessionUseCase
	scan    *mocks.MockIScanUseCase
	market  *mocks.MockIMarketplaceUseCase
	trade   *mocks.MockITradeUseCase
	ledger  *mocks.MockILedgerUseCase
}

func newMockDeps(t *testing.T) (Dependencies, mockDeps) {
	ctrl := gomock.NewController(t)
	m := mockDeps{
		session: mocks.NewMockISessionUseCase(ctrl),
		scan:    mocks.NewMockIScanUseCase(ctrl),
		market:  mocks.NewMockIMarketplaceUseCase(ctrl),
		trade:   mocks.NewMockITradeUseCase(ctrl),
		ledger:  mocks.NewMockILedgerUseCase(ctrl),
	}
	return Dependencies{Session: m.session, Scan: m.scan, Marketplace: m.market, Trade: m.trade, Ledger: m.ledger}, m
}

func TestNewRouter(t *testing.T) {
	deps, m := newMockDeps(t)
	router := NewRouter(deps)

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("routes reach handlers", func(t *testing.T) {
		m.session.EXPECT().GetProfile(gomock.Any()).Return(entities.UserProfile{}, usecase.ErrNoActiveSession)
		m.trade.EXPECT().Current(gomock.Any()).Return(entities.Negotiation{State: entities.NegotiationIdle}, nil)
		m.ledger.EXPECT().Transactions(gomock.Any()).Return(nil, nil)
		m.scan.EXPECT().Discard(gomock.Any()).Return(nil)

		cases := []struct {
			method, path string
			want         int
		}{
			{http.MethodGet, "/v1/session/profile", http.StatusUnauthorized},
			{http.MethodGet, "/v1/trades/negotiation", http.StatusOK},
			{http.MethodGet, "/v1/transactions", http.StatusOK},
			{http.MethodDelete, "/v1/scans/active", http.StatusOK},
			{http.MethodGet, "/v1/marketplace/buyers?sort=nearest", http.StatusBadRequest},
			{http.MethodGet, "/v1/unknown", http.StatusNotFound},
		}
		for _, tc := range cases {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
		}
	})
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	deps, _ := newMockDeps(t)
	router := NewRouter(deps)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	require.Equal(t, "/v1", doc.BasePath)

	documented := 0
	for _, r := range router.Routes() {
		path, ok := strings.CutPrefix(r.Path, doc.BasePath)
		if !ok {
			continue
		}
		ops, found := doc.Paths[path]
		if assert.True(t, found, "undocumented path %s", r.Path) {
			_, found = ops[strings.ToLower(r.Method)]
			assert.True(t, found, "undocumented operation %s %s", r.Method, r.Path)
		}
		documented++
	}
	assert.Equal(t, 16, documented)
}

func TestRun_ShutdownFlushesProfileAndLedger(t *testing.T) {
	deps, m := newMockDeps(t)
	m.session.EXPECT().Flush(gomock.Any()).Return(nil)
	m.ledger.EXPECT().Flush(gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, config.ServerConfig{Port: 0}, deps)
	require.NoError(t, err)
}

func TestRun_FlushErrorIsReturned(t *testing.T) {
	t.Run("ledger", func(t *testing.T) {
		deps, m := newMockDeps(t)
		m.session.EXPECT().Flush(gomock.Any()).Return(nil)
		m.ledger.EXPECT().Flush(gomock.Any()).Return(usecase.ErrPersistenceDeferred)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, config.ServerConfig{Port: 0}, deps)
		assert.ErrorIs(t, err, usecase.ErrPersistenceDeferred)
	})

	t.Run("profile failure still flushes ledger", func(t *testing.T) {
		deps, m := newMockDeps(t)
		m.session.EXPECT().Flush(gomock.Any()).Return(usecase.ErrPersistenceDeferred)
		m.ledger.EXPECT().Flush(gomock.Any()).Return(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, config.ServerConfig{Port: 0}, deps)
		assert.ErrorIs(t, err, usecase.ErrPersistenceDeferred)
	})
}
