package mailer

import "context"

// Notifier delivers a plain-text mail. Delivery is fire-and-forget for
// callers: a failed send is logged by the consumer, never surfaced to
// the request that produced it.
type Notifier interface {
	Send(ctx context.Context, subject, body, recipient string) error
}

type noopNotifier struct{}

func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Send(context.Context, string, string, string) error {
	return nil
}
