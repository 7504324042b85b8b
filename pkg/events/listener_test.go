package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNotifyChannel(t *testing.T) {
	tests := []struct {
		channel string
		want    bool
	}{
		{ChatChannel("proj-123"), true},
		{GlobalBuildsChannel, true},
		{"chat:", false},
		{"admin:boom", false},
		{"", false},
		{"projects", false},
	}

	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			assert.Equal(t, tt.want, validNotifyChannel(tt.channel))
		})
	}
}

func TestSubscribeRejectsUnknownChannel(t *testing.T) {
	l := NewNotifyListener("postgres://unused", nil)

	err := l.Subscribe(context.Background(), "admin:boom")
	assert.ErrorContains(t, err, "not a known event channel")

	// A well-formed channel fails later, on the missing connection.
	err = l.Subscribe(context.Background(), ChatChannel("p1"))
	assert.ErrorContains(t, err, "not established")
}
