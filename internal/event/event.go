// Package event provides a small synchronous publish/subscribe bus
// used by the editing engine to announce buffer, selection, and file
// activity. Delivery happens on the publisher's goroutine; the engine
// is single-threaded, so handlers observe a consistent editor state.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a hierarchical, dot-separated event type.
type Topic string

// Topics published by the engine.
const (
	TopicBufferInserted    Topic = "buffer.inserted"
	TopicBufferDeleted     Topic = "buffer.deleted"
	TopicFileOpened        Topic = "file.opened"
	TopicFileSaved         Topic = "file.saved"
	TopicFileFormatted     Topic = "file.formatted"
	TopicSelectionAppended Topic = "selection.appended"
	TopicSelectionMoved    Topic = "selection.moved"
)

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// Envelope carries one published event.
type Envelope struct {
	Topic    Topic
	Payload  any
	Metadata Metadata
}

// NewEnvelope creates an envelope with fresh metadata.
func NewEnvelope(topic Topic, payload any, source string) Envelope {
	return Envelope{
		Topic:   topic,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}
