package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		},
	)

	RegisterConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "register_conflicts_total",
			Help: "Total number of registrations rejected for a taken username",
		},
	)

	LoginsSucceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_succeeded_total",
			Help: "Total number of successful logins",
		},
	)

	LoginsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_failed_total",
			Help: "Total number of failed logins",
		},
	)
)
