package kafka

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFailureState(t *testing.T) {
	status, delay := failureState(0)
	assert.Equal(t, OutboxStatusFailed, status)
	assert.Equal(t, RetryDelay(1), delay)

	status, _ = failureState(MaxOutboxRetries - 2)
	assert.Equal(t, OutboxStatusFailed, status)

	status, delay = failureState(MaxOutboxRetries - 1)
	assert.Equal(t, OutboxStatusDead, status)
	assert.Zero(t, delay)
}

func TestTruncateReason(t *testing.T) {
	assert.Equal(t, "short", truncateReason("short"))

	long := strings.Repeat("é", maxFailureReason+20)
	got := truncateReason(long)
	assert.Equal(t, maxFailureReason, utf8.RuneCountInString(got))
}
