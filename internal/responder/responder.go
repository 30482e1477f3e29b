// Package responder simulates an assistant that answers after a fixed delay
// with a reply drawn at random from a fixed pool.
package responder

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Responder schedules canned replies on an injectable clock.
// It does not limit how many replies are pending; callers gate submissions.
type Responder struct {
	clock clockwork.Clock
	delay time.Duration
	log   zerolog.Logger

	mu  sync.Mutex // guards rng; timers fire on their own goroutines
	rng *rand.Rand
}

// New creates a Responder with the default delay, the real clock and a time-seeded source
func New(opts ...Option) *Responder {
	r := &Responder{
		clock: clockwork.NewRealClock(),
		delay: DefaultDelay,
		log:   zerolog.Nop(),
		rng:   newRand(uint64(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Delay returns the configured reply latency
func (r *Responder) Delay() time.Duration {
	return r.delay
}

// Pick draws one reply uniformly from Pool
func (r *Responder) Pick() string {
	r.mu.Lock()
	i := r.rng.IntN(len(Pool))
	r.mu.Unlock()
	return Pool[i]
}

// Schedule calls deliver once, after the delay, with a freshly picked reply.
// Stopping the returned timer before it fires drops the reply.
func (r *Responder) Schedule(deliver func(reply string)) clockwork.Timer {
	r.log.Debug().Dur("delay", r.delay).Msg("reply scheduled")
	return r.clock.AfterFunc(r.delay, func() {
		reply := r.Pick()
		r.log.Debug().Str("reply", reply).Msg("reply delivered")
		deliver(reply)
	})
}

// Await blocks until the next reply is ready or ctx is done.
// On cancellation the pending timer is stopped and ctx.Err() is returned.
func (r *Responder) Await(ctx context.Context) (string, error) {
	replies := make(chan string, 1)
	timer := r.Schedule(func(reply string) {
		replies <- reply
	})

	select {
	case reply := <-replies:
		return reply, nil
	case <-ctx.Done():
		timer.Stop()
		r.log.Debug().Err(ctx.Err()).Msg("reply cancelled")
		return "", ctx.Err()
	}
}
