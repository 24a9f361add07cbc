package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/rating-svc/internal/domain"
)

var consumedMessages = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "review_events_consumed_total",
		Help: "Review events read from Kafka by outcome",
	},
	[]string{"outcome"},
)

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessMessage(ctx context.Context, msg kafka.Message) error
}

// Consumer feeds review events from Kafka into the dispatcher. An offset is
// committed once its event was applied or can never be applied; transient
// failures are retried in place so the partition does not move past them.
type Consumer struct {
	Reader     MessageReader
	Dispatcher DispatcherInterface
	Logger     *zap.Logger
	Backoff    time.Duration
	MaxBackoff time.Duration
}

var _ ConsumerInterface = (*Consumer)(nil)

func NewConsumer(reader MessageReader, dispatcher DispatcherInterface, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader:     reader,
		Dispatcher: dispatcher,
		Logger:     logger,
		Backoff:    100 * time.Millisecond,
		MaxBackoff: 30 * time.Second,
	}
}

// Start blocks until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger().Info("review event consumer started")
	for {
		msg, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger().Info("review event consumer stopping")
				return nil
			}
			if errors.Is(err, io.EOF) {
				c.logger().Info("review event reader closed")
				return nil
			}
			c.logger().Error("failed to fetch message", zap.Error(err))
			if !sleep(ctx, c.Backoff) {
				return nil
			}
			continue
		}

		if err := c.ProcessMessage(ctx, msg); err != nil {
			// Shutting down mid-retry: leave the offset uncommitted for redelivery.
			return nil
		}

		if err := c.Reader.CommitMessages(ctx, msg); err != nil {
			c.logger().Error("failed to commit message", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

// ProcessMessage decodes and dispatches one message. Transient dispatch
// failures are retried with capped exponential backoff until they succeed,
// so a nil return means the offset may be committed. The only error returned
// is the context's.
func (c *Consumer) ProcessMessage(ctx context.Context, msg kafka.Message) error {
	var event domain.ReviewEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		consumedMessages.WithLabelValues("invalid").Inc()
		c.logger().Error("failed to unmarshal review event",
			zap.Error(err),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)
		return nil
	}

	log := c.logger().With(
		zap.String("event_id", event.EventID),
		zap.String("review_id", event.ReviewID),
		zap.String("type", string(event.Type)),
	)
	ctx = logging.NewContext(ctx, log)

	delay := c.Backoff
	for attempt := 1; ; attempt++ {
		err := c.Dispatcher.Dispatch(ctx, event)
		if err == nil {
			consumedMessages.WithLabelValues("ok").Inc()
			return nil
		}
		if isPermanent(err) {
			consumedMessages.WithLabelValues("rejected").Inc()
			log.Error("review event cannot be applied, skipping message",
				zap.Error(err),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			return nil
		}

		consumedMessages.WithLabelValues("retry").Inc()
		log.Warn("dispatch failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
		)
		if !sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
		if c.MaxBackoff > 0 && delay > c.MaxBackoff {
			delay = c.MaxBackoff
		}
	}
}

// isPermanent reports failures a redelivery cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidInput) || errors.Is(err, apperrors.ErrNotFound)
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
