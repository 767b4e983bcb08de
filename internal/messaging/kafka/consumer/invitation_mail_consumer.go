package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"timetrack/internal/events"
	"timetrack/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeInvitationCreated turns invitation.created events into
// registration mails. Delivery failures are logged and the message is
// committed anyway: mail is fire-and-forget, a poison event must not
// wedge the partition.
func ConsumeInvitationCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier mailer.Notifier,
	registrationURL string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.invitation_mail")
	log.Info("invitation mail consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("invitation mail consumer stopped")
				return
			}
			log.Error("fetch invitation message failed", zap.Error(err))
			continue
		}

		var event events.InvitationCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode invitation_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject, body := buildRegistrationMail(event, registrationURL)
		if err := notifier.Send(ctx, subject, body, event.Email); err != nil {
			log.Error("send invitation mail failed",
				zap.String("invitation_id", event.InvitationID),
				zap.String("recipient", event.Email),
				zap.Error(err),
			)
		} else {
			log.Info("invitation mail sent",
				zap.String("invitation_id", event.InvitationID),
				zap.String("recipient", event.Email),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit invitation message failed", zap.Error(err))
		}
	}
}

func buildRegistrationMail(event events.InvitationCreatedEvent, registrationURL string) (subject, body string) {
	subject = "Registration"
	body = fmt.Sprintf(
		"Dear %s %s, you are invited to register in the employee time tracking system.\n"+
			"To register, follow the link %s\n"+
			"Access code: %s",
		event.FirstName, event.LastName, registrationURL, event.Code,
	)
	return subject, body
}
