// Package whatsapp handles the Twilio WhatsApp webhook: signature
// validation, the per-message reply pipeline (order flow, then catalog
// resolver, then AI fallback) and TwiML rendering.
package whatsapp

import (
	"context"
	"time"

	"github.com/jman2424/tariq-hala-bot/pkg/order"
	"github.com/jman2424/tariq-hala-bot/pkg/services"
	"github.com/jman2424/tariq-hala-bot/pkg/session"
	"github.com/jman2424/tariq-hala-bot/pkg/shop"

	"github.com/twilio/twilio-go/client"
	"github.com/vmkteam/embedlog"
)

const defaultHistoryDepth = 5

// degradedReply is what the customer sees when the AI fallback fails. AI
// failures are absorbed here and never become a 5xx.
const degradedReply = "Sorry, I couldn't find information about that.\nPlease call ☎️ 0208 908 9440 for assistance."

type Bot struct {
	logger       embedlog.Logger
	resolver     *shop.Resolver
	flow         *order.Flow
	sessions     session.Store
	llm          services.LLM
	validator    client.RequestValidator
	validate     bool
	debug        bool
	historyDepth int
}

type Config struct {
	// AuthToken is the Twilio auth token used for signature validation.
	// Empty disables validation (local development only).
	AuthToken    string
	Debug        bool
	HistoryDepth int
}

func New(cfg Config, resolver *shop.Resolver, flow *order.Flow, sessions session.Store, llm services.LLM, logger embedlog.Logger) *Bot {
	depth := cfg.HistoryDepth
	if depth <= 0 {
		depth = defaultHistoryDepth
	}

	return &Bot{
		logger:       logger,
		resolver:     resolver,
		flow:         flow,
		sessions:     sessions,
		llm:          llm,
		validator:    client.NewRequestValidator(cfg.AuthToken),
		validate:     cfg.AuthToken != "",
		debug:        cfg.Debug,
		historyDepth: depth,
	}
}

// reply runs one message through the pipeline under the sender's session
// lock, so rapid messages from the same sender can't lose an update.
func (b *Bot) reply(ctx context.Context, sender, msg string) (string, error) {
	var reply string
	err := b.sessions.Update(ctx, sender, func(sess *session.Session) {
		reply = b.dispatch(ctx, sess, msg)
		sess.AppendTurn(msg, reply, b.historyDepth)
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (b *Bot) dispatch(ctx context.Context, sess *session.Session, msg string) string {
	if reply, handled := b.flow.Handle(sess, msg); handled {
		messagesProcessed.WithLabelValues("order").Inc()
		return reply
	}

	if reply, ok := b.resolver.Resolve(msg); ok {
		messagesProcessed.WithLabelValues("catalog").Inc()
		return reply
	}

	start := time.Now()
	reply, err := b.llm.Answer(ctx, msg, sess.History)
	aiReplyDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		errorsTotal.WithLabelValues("ai").Inc()
		messagesProcessed.WithLabelValues("degraded").Inc()
		b.logger.Error(ctx, "ai fallback failed", "err", err, "sender", sess.SenderID)
		return degradedReply
	}

	messagesProcessed.WithLabelValues("ai").Inc()
	return reply
}
