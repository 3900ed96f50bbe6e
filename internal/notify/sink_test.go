package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink_PublishAndDrain(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	require.NoError(t, sink.Publish(ctx, Event{Name: EventAddedToCart, Message: "Milk has been added to your cart.", Severity: SeverityNormal}))
	require.NoError(t, sink.Publish(ctx, Event{Name: EventOutOfStock, Message: "This item is currently out of stock.", Severity: SeverityError}))

	events := sink.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventAddedToCart, events[0].Name)
	assert.Equal(t, SeverityError, events[1].Severity)
	assert.False(t, events[0].CreatedAt.IsZero(), "publish stamps missing timestamps")

	assert.Empty(t, sink.Drain(), "drain empties the buffer")
}

type failingSink struct{ err error }

func (f failingSink) Publish(context.Context, Event) error { return f.err }

func TestFanout_PublishesToAllSinks(t *testing.T) {
	first := NewMemorySink()
	second := NewMemorySink()
	fanout := Fanout{first, second}

	require.NoError(t, fanout.Publish(context.Background(), Event{Name: EventPaymentSuccessful}))

	assert.Len(t, first.Drain(), 1)
	assert.Len(t, second.Drain(), 1)
}

func TestFanout_ErrorDoesNotStopDelivery(t *testing.T) {
	boom := errors.New("broker unreachable")
	memory := NewMemorySink()
	fanout := Fanout{failingSink{err: boom}, memory}

	err := fanout.Publish(context.Background(), Event{Name: EventPaymentSuccessful})

	assert.ErrorIs(t, err, boom)
	assert.Len(t, memory.Drain(), 1, "later sinks still receive the event")
}

func TestNewMessage(t *testing.T) {
	event := Event{Name: EventPaymentSuccessful, Message: "Your payment of $402.96 has been processed successfully.", Severity: SeverityNormal}

	msg, err := newMessage(event)
	require.NoError(t, err)

	assert.Equal(t, EventPaymentSuccessful, string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.Message, decoded.Message)
}
