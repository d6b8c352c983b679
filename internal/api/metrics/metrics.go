// Package metrics defines and registers the custom Prometheus metrics of the
// bookstore API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: requested role ("User", "Admin", or "invalid")
//   - result: "created" or a short failure reason (e.g. "duplicate", "admin_key")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthenticationFailuresTotal counts requests rejected by the bearer-token check.
// Label:
//   - reason: "missing", "expired", or "invalid"
var AuthenticationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authentication_failures_total",
		Help:      "Total number of requests rejected for a missing or bad token.",
	},
	[]string{"reason"},
)

// AuthorizationDecisionsTotal counts policy decisions.
// Labels:
//   - operation: e.g. "books.delete"
//   - decision: "allow" or "deny"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of role-policy decisions, by operation and outcome.",
	},
	[]string{"operation", "decision"},
)

// ── Book metrics ──────────────────────────────────────────────────────────────

// BookMutationsTotal counts successful catalog writes.
// Label:
//   - action: "create", "update", or "delete"
var BookMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "book_mutations_total",
		Help:      "Total number of successful book writes, by action.",
	},
	[]string{"action"},
)
