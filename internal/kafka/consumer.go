package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// seenLimit bounds how many event IDs are remembered for redelivery checks.
const seenLimit = 1024

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads booking events from one topic as part of a consumer group.
type Consumer struct {
	reader messageReader
	logger *zap.Logger
	seen   map[string]struct{}
	order  []string
}

func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *Consumer {
	return newConsumer(kafka.NewReader(kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}), logger)
}

func newConsumer(reader messageReader, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{reader: reader, logger: logger, seen: make(map[string]struct{})}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume hands each booking event to handler until ctx is done or the
// reader fails. Undecodable messages, redelivered events and handler
// failures are logged and committed so one bad event cannot stall the
// partition.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		c.handle(ctx, msg, handler)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return err
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message, handler func(context.Context, BookingEvent) error) {
	event, err := DecodeBookingEvent(msg)
	if err != nil {
		c.logger.Warn("skipping malformed message", zap.Int64("offset", msg.Offset), zap.Error(err))
		return
	}
	if !c.remember(event.EventID) {
		c.logger.Debug("skipping redelivered event", zap.String("event_id", event.EventID))
		return
	}
	if err := handler(ctx, event); err != nil {
		c.logger.Warn("booking event handler failed",
			zap.String("event_id", event.EventID),
			zap.String("booking_id", event.BookingID),
			zap.Error(err),
		)
	}
}

// remember reports false when id was already handled.
func (c *Consumer) remember(id string) bool {
	if id == "" {
		return true
	}
	if _, ok := c.seen[id]; ok {
		return false
	}
	c.seen[id] = struct{}{}
	c.order = append(c.order, id)
	if len(c.order) > seenLimit {
		delete(c.seen, c.order[0])
		c.order = c.order[1:]
	}
	return true
}
