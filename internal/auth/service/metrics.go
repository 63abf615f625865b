package service

import (
	"github.com/m-orlov/taskboard/internal/observability/metrics"
)

func incrementUsersRegistered() {
	metrics.UsersRegistered.Inc()
}

func incrementRegisterConflicts() {
	metrics.RegisterConflicts.Inc()
}

func incrementLoginsSucceeded() {
	metrics.LoginsSucceeded.Inc()
}

func incrementLoginsFailed() {
	metrics.LoginsFailed.Inc()
}
