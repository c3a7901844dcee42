// Package metrics defines and registers all custom Prometheus metrics for
// the Komfort.City backend. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "komfort"

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// LeadsSubmittedTotal counts accepted contact-form submissions.
// Label:
//   - object_type: the submitted property category (e.g. "hotel")
var LeadsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_submitted_total",
		Help:      "Total number of contact-form leads accepted.",
	},
	[]string{"object_type"},
)

// ContentWritesTotal counts admin content mutations.
// Labels:
//   - collection: the content collection written
//   - op: "create", "update", or "delete"
var ContentWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_writes_total",
		Help:      "Total number of content mutations, by collection and operation.",
	},
	[]string{"collection", "op"},
)

// MediaUploadsTotal counts media upload attempts.
// Label:
//   - result: "success" or "failure"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of media uploads, by result.",
	},
	[]string{"result"},
)

// CacheRequestsTotal counts public content cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of public list cache lookups, by result.",
	},
	[]string{"result"},
)
