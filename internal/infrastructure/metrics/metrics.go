package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	UserRegistered = "user_registered_total"
	LoginSucceeded = "login_succeeded_total"
	LoginFailed    = "login_failed_total"
	LoggedOut      = "user_logged_out_total"
	UserBlocked    = "user_blocked_total"
	SessionChecked = "session_checked_total"
	AppRequests    = "app_requests_total"
)

// NewCounter registers the service counter on the default registry.
func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(counterOpts(), []string{"result"})
}

// NewUnregisteredCounter is for tests and one-shot commands.
func NewUnregisteredCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(counterOpts(), []string{"result"})
}

func counterOpts() prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: "useraccount",
		Name:      "general_counters",
	}
}
