package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewUnregisteredCounter(t *testing.T) {
	c := NewUnregisteredCounter()
	c.WithLabelValues(UserRegistered).Inc()
	c.WithLabelValues(UserRegistered).Inc()
	c.WithLabelValues(LoginFailed).Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.WithLabelValues(UserRegistered)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues(LoginFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.WithLabelValues(UserBlocked)))
}
