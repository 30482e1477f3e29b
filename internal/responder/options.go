package responder

import (
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Option configures a Responder.
type Option func(*Responder)

// WithClock sets the clock used to schedule replies
func WithClock(clock clockwork.Clock) Option {
	return func(r *Responder) {
		r.clock = clock
	}
}

// WithDelay sets the reply latency. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(r *Responder) {
		if d < 0 {
			d = 0
		}
		r.delay = d
	}
}

// WithSeed makes reply selection reproducible
func WithSeed(seed uint64) Option {
	return func(r *Responder) {
		r.rng = newRand(seed)
	}
}

// WithRand sets the random source directly
func WithRand(rng *rand.Rand) Option {
	return func(r *Responder) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// WithLogger sets the logger for schedule and delivery events
func WithLogger(log zerolog.Logger) Option {
	return func(r *Responder) {
		r.log = log
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
