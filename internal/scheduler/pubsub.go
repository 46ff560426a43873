package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"
)

// Job types accepted on the intake subscription.
const (
	JobDataUpdate  = "data_update"
	JobDailyReport = "daily_report"
	JobHealthCheck = "health_check"
)

// JobMessage is the envelope published to the intake topic.
type JobMessage struct {
	JobType string `json:"job_type"`
}

// PubSubHandler consumes scheduler jobs from a Pub/Sub subscription, so
// external systems (Cloud Scheduler, ops tooling) can drive cycles without
// touching the HTTP surface.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	scheduler        *Scheduler
	logger           zerolog.Logger
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string
	Scheduler        *Scheduler
	Logger           zerolog.Logger
}

// NewPubSubHandler creates a Pub/Sub job handler.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)
	subscriber.ReceiveSettings.MaxOutstandingMessages = 4
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		scheduler:        cfg.Scheduler,
		logger:           cfg.Logger,
	}, nil
}

// Start begins processing messages. Blocks until ctx is canceled.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub job handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	start := time.Now()

	logger := h.logger.With().
		Str("message_id", msg.ID).
		Logger()

	var job JobMessage
	if err := json.Unmarshal(msg.Data, &job); err != nil {
		logger.Error().Err(err).Msg("failed to parse job message")
		msg.Nack()
		return
	}

	var err error
	switch job.JobType {
	case JobDataUpdate:
		_, err = h.scheduler.TriggerDataUpdate(ctx)
	case JobDailyReport:
		_, err = h.scheduler.GenerateDailyReport(ctx)
	case JobHealthCheck:
		health := h.scheduler.HealthCheck(ctx)
		if health.Upstream != "ok" {
			err = fmt.Errorf("upstream unhealthy: %s", health.Upstream)
		}
	default:
		// Ack unknown types so they are not redelivered forever.
		logger.Warn().Str("job_type", job.JobType).Msg("unknown job type, dropping")
		msg.Ack()
		return
	}

	if err != nil {
		logger.Error().Err(err).Str("job_type", job.JobType).Msg("job failed")
		msg.Nack()
		return
	}

	logger.Info().
		Str("job_type", job.JobType).
		Dur("duration", time.Since(start)).
		Msg("job completed")
	msg.Ack()
}
