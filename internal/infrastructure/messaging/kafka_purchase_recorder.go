package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const DefaultPurchasesTopic = "storefront-purchases"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPurchaseRecorder publishes one message per completed purchase.
// The key is a fresh purchase id; the value is the JSON PurchaseRecord.
type KafkaPurchaseRecorder struct {
	writer messageWriter
	log    *slog.Logger
}

var _ interfaces.IPurchaseRecorder = (*KafkaPurchaseRecorder)(nil)

func NewKafkaPurchaseRecorder(topic string, brokers ...string) *KafkaPurchaseRecorder {
	if topic == "" {
		topic = DefaultPurchasesTopic
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return newKafkaPurchaseRecorder(w)
}

func newKafkaPurchaseRecorder(w messageWriter) *KafkaPurchaseRecorder {
	return &KafkaPurchaseRecorder{writer: w, log: logging.New("purchases")}
}

func (r *KafkaPurchaseRecorder) Record(ctx context.Context, purchase entities.PurchaseRecord) error {
	value, err := json.Marshal(purchase)
	if err != nil {
		return fmt.Errorf("marshal purchase: %w", err)
	}

	purchaseID := uuid.NewString()
	msg := kafka.Message{
		Key:   []byte(purchaseID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("purchase_completed")},
		},
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish purchase %s: %w", purchaseID, err)
	}
	r.log.Info("[purchase][recorder] published", "purchase_id", purchaseID, "total", purchase.Total, "lines", len(purchase.Products))
	return nil
}

func (r *KafkaPurchaseRecorder) Close() error {
	return r.writer.Close()
}

// LogPurchaseRecorder only logs the purchase. It is used when no broker is
// configured.
type LogPurchaseRecorder struct {
	log *slog.Logger
}

var _ interfaces.IPurchaseRecorder = (*LogPurchaseRecorder)(nil)

func NewLogPurchaseRecorder() *LogPurchaseRecorder {
	return &LogPurchaseRecorder{log: logging.New("purchases")}
}

func (r *LogPurchaseRecorder) Record(_ context.Context, purchase entities.PurchaseRecord) error {
	r.log.Info("[purchase][recorder] purchase recorded", "total", purchase.Total, "lines", len(purchase.Products))
	return nil
}
