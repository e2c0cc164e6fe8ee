package otp

import (
	"testing"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{name: "Default", length: 6},
		{name: "Min", length: 4},
		{name: "Max", length: 12},
		{name: "TooShort", length: 3, wantErr: true},
		{name: "TooLong", length: 13, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(config.OTPConfig{Length: tt.length, TTL: time.Minute})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLength)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Minute, c.TTL())
		})
	}
}

func TestCore_Code(t *testing.T) {
	c, err := New(config.OTPConfig{Length: 6, TTL: 15 * time.Minute})
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := c.Code()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non digit in %q", code)
		}
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 150)
}

func TestCore_Issue(t *testing.T) {
	c, err := New(config.OTPConfig{Length: 8, TTL: 15 * time.Minute})
	require.NoError(t, err)

	id := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ch, err := c.Issue(id, now)
	require.NoError(t, err)
	assert.Equal(t, id, ch.DeviceID)
	assert.Len(t, ch.Code, 8)
	assert.Equal(t, now, ch.CreatedAt)
	assert.Equal(t, now.Add(15*time.Minute), ch.ExpiresAt)
	assert.False(t, ch.Consumed)
}
