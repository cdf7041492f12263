// Package metrics defines and registers the custom Prometheus metrics for the
// vacancy API. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vacancy_api"

// ── Vacancy metrics ───────────────────────────────────────────────────────────

// VacanciesCreatedTotal counts vacancies successfully created.
var VacanciesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacancies_created_total",
		Help:      "Total number of vacancies created.",
	},
)

// VacanciesUpdatedTotal counts full-record replacements that wrote a record.
var VacanciesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacancies_updated_total",
		Help:      "Total number of vacancies replaced.",
	},
)

// VacanciesDeletedTotal counts vacancies removed.
var VacanciesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacancies_deleted_total",
		Help:      "Total number of vacancies deleted.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid", or "locked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// LockoutsTotal counts accounts that crossed the failed-attempt threshold.
var LockoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lockouts_total",
		Help:      "Total number of login lockouts triggered.",
	},
)
