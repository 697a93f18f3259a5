package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a ledger-affecting operation to Kafka. Publishing
// is fire-and-forget: failures are logged, never surfaced to the caller.
func publishEvent(ctx context.Context, w KafkaWriter, userID, transactionID uuid.UUID, currency string, amount int64, operation string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", transactionID)
		return
	}

	ev := models.TransactionEvent{
		TransactionID: transactionID.String(),
		UserID:        userID.String(),
		Timestamp:     time.Now().Unix(),
		Currency:      currency,
		Amount:        amount,
		Operation:     operation,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", ev.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.TransactionID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", ev.TransactionID, "error", err)
		return
	}
	logger.Log.Infow("transaction event published", "transaction_id", ev.TransactionID, "operation", ev.Operation, "amount", ev.Amount)
}

// randomCode returns an 8-character hex code for mail verification and
// temporary passwords.
func randomCode() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
