package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PicksImplementation(t *testing.T) {
	assert.IsType(t, NopPublisher{}, New(nil))

	p := New([]string{"localhost:9092"})
	kp, ok := p.(*KafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, "localhost:9092", kp.writer.Addr.String())
	require.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishEvent(context.Background(), TopicUserEvents, "k", map[string]any{"type": "x"}))
	assert.NoError(t, p.Close())
}

func TestKafkaPublisher_RejectsUnencodableEvent(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"})
	t.Cleanup(func() { _ = p.Close() })

	err := p.PublishEvent(context.Background(), TopicProductEvents, "k", map[string]any{"bad": make(chan int)})
	assert.ErrorContains(t, err, "json.Marshal")
}

func TestKafkaPublisher_DoesNotWaitForBatches(t *testing.T) {
	p := NewKafkaPublisher([]string{"127.0.0.1:1"})
	t.Cleanup(func() { _ = p.Close() })

	assert.True(t, p.writer.Async)
	assert.Equal(t, 10*time.Millisecond, p.writer.BatchTimeout)

	start := time.Now()
	err := p.PublishEvent(context.Background(), TopicUserEvents, "k", map[string]any{"type": "user_registered"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
