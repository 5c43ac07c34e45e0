package kafka_test

import (
	"context"
	"testing"

	"galerij/config"
	"galerij/infras/kafka"
	"galerij/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	tests := []struct {
		name    string
		message kafka.Message
		value   string
		wantErr bool
	}{
		{
			name:    "struct value",
			message: kafka.Message{Key: "12", Value: struct{ ID int64 }{ID: 12}},
			value:   `{"ID":12}`,
		},
		{
			name:    "unsupported value",
			message: kafka.Message{Key: "x", Value: make(chan int)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := tt.message.ToKafkaMessage()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.message.Key, string(msg.Key))
			assert.JSONEq(t, tt.value, string(msg.Value))
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), kafka.Message{Key: "1", Value: "x"}))
	assert.NoError(t, client.Close())
}

func TestNew_EnabledWithoutBrokers(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true

	client := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), kafka.Message{Key: "1", Value: "x"}))
}
