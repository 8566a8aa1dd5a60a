package billing

import (
	"context"
	"math/rand"
	"time"
)

// SimulatedGateway fakes a card processor: a short latency and roughly 90%
// of charges approved. Tests inject deterministic gateways instead.
type SimulatedGateway struct {
	Latency time.Duration
	rng     *rand.Rand
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		Latency: latency,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ float64) error {
	if g.Latency > 0 {
		select {
		case <-time.After(g.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if g.rng.Float64() >= 0.9 {
		return ErrPaymentDeclined
	}
	return nil
}
