// Package bot turns free-text chat messages into ledger operations and
// natural-language replies. One handler runs per message, chosen by an
// ordered pattern cascade; unmatched messages get no reply at all.
package bot

import (
	"context"
	"math/rand"
	"time"

	"grana/internal/chat"
	"grana/internal/ledger"
	"grana/internal/log"
)

// Config tunes per-message behavior. The reply delay simulates a human
// typing; it is cosmetic and tests set both bounds to zero.
type Config struct {
	DelayMin time.Duration
	DelayMax time.Duration

	// Clock supplies "now" for date defaults and month queries. Nil means
	// time.Now.
	Clock func() time.Time
}

type Bot struct {
	store  ledger.Store
	log    *log.Logger
	clock  func() time.Time
	dmin   time.Duration
	dmax   time.Duration
	routes []route
}

func New(store ledger.Store, logger *log.Logger, cfg Config) *Bot {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	dmin, dmax := cfg.DelayMin, cfg.DelayMax
	if dmin < 0 {
		dmin = 0
	}
	if dmax < dmin {
		dmax = dmin
	}
	b := &Bot{
		store: store,
		log:   logger.WithComponent(log.ComponentBot),
		clock: clock,
		dmin:  dmin,
		dmax:  dmax,
	}
	b.routes = b.buildRoutes()
	return b
}

// Handle processes one inbound message: typing indicator, cosmetic delay,
// dispatch, at most one reply. A panic anywhere below is converted into the
// generic apology so one bad message never takes the process down.
func (b *Bot) Handle(ctx context.Context, msg chat.Message, r chat.Replier) {
	defer func() {
		if rec := recover(); rec != nil {
			b.log.ErrorContext(ctx, "Recovered panic while processing message",
				log.FieldMessageID, msg.ID, log.FieldError, rec)
			if err := r.Reply(ctx, replyGenericError); err != nil {
				b.log.ErrorContext(ctx, "Failed to send error reply",
					log.FieldMessageID, msg.ID, log.FieldError, err)
			}
		}
	}()

	delay := b.replyDelay()
	b.log.InfoContext(ctx, "Message received",
		log.FieldMessageID, msg.ID,
		log.FieldFrom, msg.From,
		log.FieldText, msg.Text,
		log.FieldDelay, delay.String())

	if err := r.SendTyping(ctx); err != nil {
		b.log.WarnContext(ctx, "Typing indicator failed", log.FieldError, err)
	}
	if !sleep(ctx, delay) {
		return
	}

	reply, intent := b.dispatch(ctx, msg)
	if reply == "" {
		b.log.DebugContext(ctx, "No intent matched", log.FieldMessageID, msg.ID)
		return
	}
	b.log.InfoContext(ctx, "Intent handled",
		log.FieldMessageID, msg.ID, log.FieldIntent, intent)
	if err := r.Reply(ctx, reply); err != nil {
		b.log.ErrorContext(ctx, "Failed to send reply",
			log.FieldMessageID, msg.ID, log.FieldIntent, intent, log.FieldError, err)
	}
}

func (b *Bot) replyDelay() time.Duration {
	if b.dmax <= b.dmin {
		return b.dmin
	}
	return b.dmin + time.Duration(rand.Int63n(int64(b.dmax-b.dmin)))
}

// sleep waits for d, returning false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
