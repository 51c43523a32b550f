// Package easypaisa simulates the EasyPaisa advance-payment step. No money
// moves: the gateway only waits out the configured processing time.
package easypaisa

//go:generate go run go.uber.org/mock/mockgen -source=./easypaisa.go -destination=./mocks/easypaisa_mock.go -package=mocks

import (
	"context"
	"fmt"
	"glamp/config"
	"glamp/infras/otel"
	"glamp/shared/constant"
	"glamp/shared/money"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const Provider = "easypaisa"

type Receipt struct {
	Provider  string      `json:"provider"`
	Reference string      `json:"reference"`
	Amount    money.Money `json:"amount"`
	PaidAt    time.Time   `json:"paidAt"`
}

type Gateway interface {
	// Charge blocks for the processing delay and then approves. It returns
	// early with ctx.Err() if the request is cancelled.
	Charge(ctx context.Context, amount money.Money) (Receipt, error)
}

type stubGateway struct {
	delay time.Duration
	otel  otel.Otel
	now   func() time.Time
}

func New(cfg *config.Config, ot otel.Otel) Gateway {
	return NewWithDelay(time.Duration(cfg.Booking.PaymentProcessingMillis)*time.Millisecond, ot)
}

func NewWithDelay(delay time.Duration, ot otel.Otel) Gateway {
	return &stubGateway{
		delay: delay,
		otel:  ot,
		now:   time.Now,
	}
}

func (g *stubGateway) Charge(ctx context.Context, amount money.Money) (res Receipt, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".EasyPaisa.Charge")
	defer scope.End()
	defer scope.TraceIfError(err)

	if amount <= 0 {
		return res, fmt.Errorf("invalid advance amount %d", amount)
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return res, fmt.Errorf("payment interrupted: %w", ctx.Err())
	case <-timer.C:
	}

	res = Receipt{
		Provider:  Provider,
		Reference: "EP-" + uuid.NewString()[:8],
		Amount:    amount,
		PaidAt:    g.now(),
	}

	log.Info().Str("reference", res.Reference).Int64("amount", int64(amount)).Msg("easypaisa advance approved")

	return res, nil
}
