package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "nexus_recycle/docs"
	"nexus_recycle/internal/adapter/http/handlers"
	"nexus_recycle/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine serving the /v1 API and the swagger UI.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	impactHandler := handlers.NewImpactHandler(deps.Ledger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, handlers.NewSessionHandler(deps.Session), impactHandler)
	addScanRoutes(v1, handlers.NewScanHandler(deps.Scan))
	addMarketplaceRoutes(v1, handlers.NewMarketplaceHandler(deps.Marketplace))
	addTradeRoutes(v1, handlers.NewTradeHandler(deps.Trade), impactHandler)
	return router
}

// Run serves the API until ctx is cancelled, then shuts the server down and
// flushes any profile or ledger write that is still pending.
func Run(ctx context.Context, cfg config.ServerConfig, deps Dependencies) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[http][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return eris.Wrap(err, "http: serve")
		}
		return nil
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	zap.L().Info("[http][server] shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("[http][server] shutdown failed", zap.Error(err))
	}
	var flushErr error
	if err := deps.Session.Flush(shutdownCtx); err != nil {
		zap.L().Error("[http][server] profile flush failed", zap.Error(err))
		flushErr = err
	}
	if err := deps.Ledger.Flush(shutdownCtx); err != nil {
		zap.L().Error("[http][server] ledger flush failed", zap.Error(err))
		flushErr = errors.Join(flushErr, err)
	}
	return flushErr
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("[http][server] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zap.L().Info("[http][request]",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
