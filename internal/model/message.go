package model

import "time"

// Message represents a chat message in a room. Text is stored
// post-moderation; the timestamp is always UTC and serializes as RFC 3339.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Room      string    `json:"room"`
}
