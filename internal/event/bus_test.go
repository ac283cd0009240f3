package event

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var got []Envelope
	bus.Subscribe(TopicBufferInserted, func(env Envelope) {
		got = append(got, env)
	})

	bus.Publish(NewEnvelope(TopicBufferInserted, TextInserted{Text: "x", Cursors: 1}, "test"))

	if len(got) != 1 {
		t.Fatalf("received %d events, want 1", len(got))
	}
	p, ok := got[0].Payload.(TextInserted)
	if !ok {
		t.Fatalf("payload type %T", got[0].Payload)
	}
	if p.Text != "x" || p.Cursors != 1 {
		t.Errorf("payload = %+v", p)
	}
}

func TestBusTopicIsolation(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(TopicFileSaved, func(Envelope) { called = true })

	bus.Publish(NewEnvelope(TopicFileOpened, FileOpened{Path: "x"}, "test"))

	if called {
		t.Error("handler for a different topic should not fire")
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	count := 0
	bus.Subscribe(TopicSelectionMoved, func(Envelope) { count++ })
	bus.Subscribe(TopicSelectionMoved, func(Envelope) { count++ })

	bus.Publish(NewEnvelope(TopicSelectionMoved, SelectionMoved{Count: 1}, "test"))

	if count != 2 {
		t.Errorf("handlers fired %d times, want 2", count)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe(TopicFileSaved, func(Envelope) { called = true })
	bus.Unsubscribe(TopicFileSaved, id)

	bus.Publish(NewEnvelope(TopicFileSaved, FileSaved{Path: "x"}, "test"))

	if called {
		t.Error("unsubscribed handler should not fire")
	}

	// Unknown IDs are ignored.
	bus.Unsubscribe(TopicFileSaved, "nope")
	bus.Unsubscribe("no.such.topic", id)
}

func TestEnvelopeMetadata(t *testing.T) {
	env := NewEnvelope(TopicFileOpened, nil, "editor")

	if env.Metadata.ID == "" {
		t.Error("envelope should carry a unique ID")
	}
	if env.Metadata.Timestamp.IsZero() {
		t.Error("envelope should carry a timestamp")
	}
	if env.Metadata.Source != "editor" {
		t.Errorf("Source = %q", env.Metadata.Source)
	}

	other := NewEnvelope(TopicFileOpened, nil, "editor")
	if env.Metadata.ID == other.Metadata.ID {
		t.Error("envelope IDs should be unique")
	}
}
