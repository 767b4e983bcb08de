package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timetrack/internal/events"
	"timetrack/internal/mailer"
	"timetrack/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	registrationURL := os.Getenv("REGISTRATION_URL")
	if registrationURL == "" {
		return fmt.Errorf("REGISTRATION_URL is required")
	}

	notifier := buildNotifier(logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.InvitationCreatedTopic,
		GroupID:        "timetrack-invitation-mail",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeInvitationCreated(ctx, reader, notifier, registrationURL, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

// buildNotifier falls back to a noop sender when SMTP is not
// configured, which keeps local runs working without a relay.
func buildNotifier(logger *zap.Logger) mailer.Notifier {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		logger.Warn("SMTP_HOST not set, invitation mails will be dropped")
		return mailer.NewNoopNotifier()
	}

	return mailer.NewSMTPNotifier(mailer.SMTPConfig{
		Host:     host,
		Port:     os.Getenv("SMTP_PORT"),
		From:     os.Getenv("SMTP_FROM"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	})
}
