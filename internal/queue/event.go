// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketStatusEvent is published whenever the status of a purchase
// changes through this API: tickets issued at the machines, refunds
// reported by the app server, or promotional tickets distributed.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type TicketStatusEvent struct {
	EventID       string `json:"event_id"`
	TransactionID string `json:"transaction_id,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	TicketType    string `json:"ticket_type,omitempty"`
	Status        string `json:"status"` // ISSUED | REFUNDED | DISTRIBUTED
	OccurredAt    string `json:"occurred_at"`
}
