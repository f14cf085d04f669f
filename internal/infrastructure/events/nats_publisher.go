package events

import (
	"context"
	"encoding/json"
	"time"

	"nexus_recycle/internal/config"
	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const DefaultSubject = "nexus.trade.completed"

// TradeCompleted is the payload published for every recorded trade.
type TradeCompleted struct {
	Type        string               `json:"type"`
	OccurredAt  time.Time            `json:"occurred_at"`
	Transaction entities.Transaction `json:"transaction"`
}

type publisher interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher announces completed trades on a NATS subject.
type NATSPublisher struct {
	conn    publisher
	closeFn func()
	subject string
}

var _ interfaces.ITradeEventPublisher = (*NATSPublisher)(nil)

// NewTradeEventPublisher connects to NATS when cfg.NATSURL is set and
// returns a no-op publisher otherwise.
func NewTradeEventPublisher(cfg config.EventsConfig) (interfaces.ITradeEventPublisher, func(), error) {
	if cfg.NATSURL == "" {
		zap.L().Info("[events][nats] disabled, trade events are not published")
		return NopPublisher{}, func() {}, nil
	}

	nc, err := nats.Connect(cfg.NATSURL,
		nats.Name("nexus-recycle"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, eris.Wrap(err, "nats: connect")
	}
	zap.L().Info("[events][nats] connected", zap.String("url", nc.ConnectedUrl()))

	p := newNATSPublisher(nc, cfg.Subject)
	p.closeFn = func() {
		if err := nc.Drain(); err != nil {
			zap.L().Warn("[events][nats] drain failed", zap.Error(err))
		}
	}
	return p, p.Close, nil
}

func newNATSPublisher(conn publisher, subject string) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSPublisher{conn: conn, subject: subject}
}

func (p *NATSPublisher) PublishTradeCompleted(ctx context.Context, tx entities.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(TradeCompleted{
		Type:        "trade.completed",
		OccurredAt:  tx.Timestamp,
		Transaction: tx,
	})
	if err != nil {
		return eris.Wrap(err, "nats: marshal event")
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return eris.Wrapf(err, "nats: publish %s", p.subject)
	}
	zap.L().Debug("[events][nats] trade published", zap.String("tx_id", tx.ID), zap.String("subject", p.subject))
	return nil
}

func (p *NATSPublisher) Close() {
	if p.closeFn != nil {
		p.closeFn()
	}
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishTradeCompleted(context.Context, entities.Transaction) error { return nil }
