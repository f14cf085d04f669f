package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	appconfig "nexus_recycle/internal/config"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrPaymentRejected = errors.New("payment rejected by provider")

// MercadoPagoGateway settles trades as Mercado Pago payments. In mock mode
// every payment is approved after the configured latency.
type MercadoPagoGateway struct {
	client          payment.Client
	mockMode        bool
	latency         time.Duration
	paymentMethodID string
	payerEmail      string
}

var _ interfaces.ISettlementGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.SettlementConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock || isPaymentGatewayMockEnabled() {
		zap.L().Info("[settlement][gateway] mock mode enabled", zap.Duration("latency", cfg.Latency))
		return &MercadoPagoGateway{mockMode: true, latency: cfg.Latency}, nil
	}

	if cfg.AccessToken == "" {
		zap.L().Error("[settlement][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		zap.L().Error("[settlement][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	zap.L().Info("[settlement][gateway] Mercado Pago client initialized")

	return newGatewayWithClient(payment.NewClient(sdkCfg), cfg), nil
}

func newGatewayWithClient(client payment.Client, cfg appconfig.SettlementConfig) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		client:          client,
		paymentMethodID: cfg.PaymentMethodID,
		payerEmail:      cfg.PayerEmail,
	}
}

func (g *MercadoPagoGateway) Settle(ctx context.Context, req interfaces.SettlementRequest) (interfaces.SettlementReceipt, error) {
	if g != nil && g.mockMode {
		return g.settleMock(ctx, req)
	}

	if g == nil || g.client == nil {
		zap.L().Error("[settlement][gateway] gateway not configured")
		return interfaces.SettlementReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}
	zap.L().Info("[settlement][gateway] create start",
		zap.String("reference", req.Reference),
		zap.Float64("amount", req.Amount),
	)

	payload := map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"external_reference": req.Reference,
		"payment_method_id":  g.paymentMethodID,
		"metadata": map[string]any{
			"buyer_name": req.BuyerName,
			"material":   req.Material,
		},
	}
	if g.payerEmail != "" {
		payload["payer"] = map[string]any{"email": g.payerEmail}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return interfaces.SettlementReceipt{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(b, &mpReq); err != nil {
		zap.L().Error("[settlement][gateway] payload unmarshal failed", zap.Error(err))
		return interfaces.SettlementReceipt{}, err
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		zap.L().Error("[settlement][gateway] sdk create failed", zap.Error(err))
		return interfaces.SettlementReceipt{}, err
	}

	receipt := interfaces.SettlementReceipt{ProviderID: fmt.Sprintf("%d", resp.ID), Status: resp.Status}
	switch resp.Status {
	case "rejected", "cancelled":
		zap.L().Warn("[settlement][gateway] payment not approved",
			zap.String("provider_id", receipt.ProviderID),
			zap.String("status", resp.Status),
			zap.String("status_detail", resp.StatusDetail),
		)
		return receipt, fmt.Errorf("%w: %s", ErrPaymentRejected, resp.StatusDetail)
	}

	zap.L().Info("[settlement][gateway] create success",
		zap.String("provider_id", receipt.ProviderID),
		zap.String("status", receipt.Status),
	)
	return receipt, nil
}

func (g *MercadoPagoGateway) settleMock(ctx context.Context, req interfaces.SettlementRequest) (interfaces.SettlementReceipt, error) {
	zap.L().Info("[settlement][gateway] mock create start", zap.String("reference", req.Reference))

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return interfaces.SettlementReceipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	zap.L().Info("[settlement][gateway] mock create success", zap.String("provider_id", id))
	return interfaces.SettlementReceipt{ProviderID: id, Status: "approved"}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
