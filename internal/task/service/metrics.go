package service

import (
	"github.com/m-orlov/taskboard/internal/observability/metrics"
)

func incrementTasksCreated() {
	metrics.TasksCreated.Inc()
}

func incrementTasksUpdated() {
	metrics.TasksUpdated.Inc()
}

func incrementTasksDeleted() {
	metrics.TasksDeleted.Inc()
}

func incrementTasksListed() {
	metrics.TasksListed.Inc()
}
