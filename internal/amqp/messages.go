package amqp

import (
	"encoding/json"
	"time"
)

// Reasons carried by a LedgerChangedMessage.
const (
	ReasonTransactionCreated = "transaction_created"
	ReasonTransactionDeleted = "transaction_deleted"
	ReasonRevenueCreated     = "revenue_created"
	ReasonRevenueDeleted     = "revenue_deleted"
)

// LedgerChangedMessage tells the export worker that a month's figures moved.
// It carries only the month coordinates and a reason; the worker reloads the
// ledger and recomputes the report itself.
type LedgerChangedMessage struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"` // 1-12
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerChangedMessage creates a change message stamped with the current time.
func NewLedgerChangedMessage(year, month int, reason string) *LedgerChangedMessage {
	return &LedgerChangedMessage{
		Year:      year,
		Month:     month,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerChangedMessageFromJSON creates a message from JSON bytes
func LedgerChangedMessageFromJSON(data []byte) (*LedgerChangedMessage, error) {
	var msg LedgerChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
