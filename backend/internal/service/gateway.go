package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mateoroldos/personal-blog/shared/domain"
	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
	"github.com/mateoroldos/personal-blog/shared/logger"
	"github.com/mateoroldos/personal-blog/shared/middleware/metrics"
)

const (
	ChannelContact      = "contact"
	ChannelSubscription = "subscription"
)

// to mock service in tests
type GatewayService interface {
	Contact(ctx context.Context, email, message string) Result
	Subscribe(ctx context.Context, email string) Result
}

type EmailSender interface {
	SendEmail(ctx context.Context, msg domain.OutgoingEmail) (domain.ProviderResult, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, s domain.Subscription) (domain.ProviderResult, error)
}

type EmailComposer interface {
	Compose(s domain.ContactSubmission) (domain.OutgoingEmail, error)
}

// Result is the typed outcome of one gateway invocation.
// Err is for logs and tests; it may carry provider text and must not reach clients.
type Result struct {
	Outcome domain.Outcome
	State   domain.DispatchState
	Reason  apperrors.Kind
	Err     error
}

// Gateway forwards validated form submissions to the notification providers.
// Every invocation makes at most one provider call and never retries.
type Gateway struct {
	sender     EmailSender
	subscriber Subscriber
	composer   EmailComposer
}

func NewGateway(sender EmailSender, subscriber Subscriber, composer EmailComposer) GatewayService {
	return &Gateway{sender: sender, subscriber: subscriber, composer: composer}
}

func (g *Gateway) Contact(ctx context.Context, email, message string) (res Result) {
	d := newDispatch(ctx, ChannelContact, email)
	defer d.finish(&res)

	sub, err := domain.NewContactSubmission(email, message)
	if err != nil {
		return d.reject(err)
	}
	d.to(domain.Validated)

	d.to(domain.Dispatched)
	msg, err := g.composer.Compose(sub)
	if err != nil {
		return d.fail(err)
	}
	pr, err := g.sender.SendEmail(ctx, msg)
	return d.settle(pr, err)
}

func (g *Gateway) Subscribe(ctx context.Context, email string) (res Result) {
	d := newDispatch(ctx, ChannelSubscription, email)
	defer d.finish(&res)

	sub, err := domain.NewSubscription(email)
	if err != nil {
		return d.reject(err)
	}
	d.to(domain.Validated)

	d.to(domain.Dispatched)
	pr, err := g.subscriber.Subscribe(ctx, sub)
	return d.settle(pr, err)
}

// dispatch is the per-invocation state of one submission.
type dispatch struct {
	channel string
	state   domain.DispatchState
	log     *slog.Logger
}

func newDispatch(ctx context.Context, channel, email string) *dispatch {
	return &dispatch{
		channel: channel,
		state:   domain.Received,
		log:     logger.FromContext(ctx).With("channel", channel, "email", logger.RedactEmail(email)),
	}
}

func (d *dispatch) to(next domain.DispatchState) {
	s, err := d.state.Next(next)
	if err != nil {
		d.log.Error("dispatch state machine violated", "error", err)
		s = next
	}
	d.state = s
}

func (d *dispatch) reject(err error) Result {
	d.to(domain.RejectedState)
	d.log.Info("submission rejected", "reason", err)
	return d.result(domain.Rejected, err)
}

func (d *dispatch) fail(err error) Result {
	if d.state != domain.Dispatched {
		// failures before dispatch only come from recovered panics
		d.state = domain.Dispatched
	}
	d.to(domain.Failed)

	outcome := domain.InternalFailure
	switch apperrors.KindOf(err) {
	case apperrors.UpstreamUnavailable, apperrors.UpstreamRejected:
		outcome = domain.UpstreamFailure
	}

	attrs := []any{"outcome", outcome.String(), "error", err}
	var upstream *apperrors.UpstreamError
	if errors.As(err, &upstream) && upstream.Body != "" {
		attrs = append(attrs, "provider_status", upstream.StatusCode, "provider_body", upstream.Body)
	}
	d.log.Error("notification failed", attrs...)
	return d.result(outcome, err)
}

// settle interprets the single provider call.
func (d *dispatch) settle(pr domain.ProviderResult, err error) Result {
	if err != nil {
		return d.fail(err)
	}
	if !pr.OK {
		return d.fail(apperrors.Rejected(d.channel+" provider", pr.StatusCode, pr.Body))
	}
	d.to(domain.Succeeded)
	d.log.Info("notification delivered", "provider_status", pr.StatusCode)
	return d.result(domain.Accepted, nil)
}

func (d *dispatch) result(outcome domain.Outcome, err error) Result {
	return Result{Outcome: outcome, State: d.state, Reason: apperrors.KindOf(err), Err: err}
}

// finish must be deferred directly so that recover sees provider panics.
func (d *dispatch) finish(res *Result) {
	if p := recover(); p != nil {
		*res = d.fail(fmt.Errorf("recovered panic: %v", p))
	}
	metrics.RecordNotification(d.channel, res.Outcome.String())
}
