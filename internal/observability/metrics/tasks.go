package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Total number of tasks created",
		},
	)

	TasksUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_updated_total",
			Help: "Total number of tasks updated",
		},
	)

	TasksDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_deleted_total",
			Help: "Total number of tasks deleted",
		},
	)

	TasksListed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_listed_total",
			Help: "Total number of task list reads",
		},
	)
)
