package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageBrokerRoundtrip(t *testing.T) {
	uri := TestRabbitMQ(t)

	mb, err := NewMessageBroker(uri)
	assert.NoError(t, err)
	defer mb.Close()

	err = SetupUserExchange(mb)
	assert.NoError(t, err)

	msgs, err := mb.Consume(UserCreatedKey, UserExchange, UserCreatedQueue)
	assert.NoError(t, err)

	payload := []byte(`{"Username": "testuser", "Email": "test@example.com"}`)
	err = mb.Publish(context.Background(), payload, UserCreatedKey, UserExchange)
	assert.NoError(t, err)

	select {
	case msg := <-msgs:
		assert.Equal(t, payload, msg.Body)
		assert.Equal(t, "application/json", msg.ContentType)
		assert.NoError(t, msg.Ack(false))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a delivery")
	}
}
