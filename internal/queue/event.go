// Package queue defines message payloads exchanged over the message broker.
package queue

// ReviewCreatedEvent is published after a review is successfully
// inserted. It carries enough for downstream consumers to notify or
// aggregate without querying the primary database.
type ReviewCreatedEvent struct {
	ReviewID   string `json:"review_id"`
	UserID     string `json:"user_id"`
	MechanicID string `json:"mechanic_id"`
	Rating     int    `json:"rating"`
	CreatedAt  string `json:"created_at"`
}
