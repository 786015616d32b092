// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the dev server's Prometheus collectors. Each server owns its
// registry so several can run in one process.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ChatMessages        *prometheus.CounterVec
	RecipesSaved        prometheus.Counter
	ContactSubmissions  prometheus.Counter
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cookbot_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cookbot_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		ChatMessages: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cookbot_chat_messages_total",
				Help: "Chat messages answered",
			},
			[]string{"kind"}, // "text" or "recipe"
		),
		RecipesSaved: f.NewCounter(
			prometheus.CounterOpts{
				Name: "cookbot_recipes_saved_total",
				Help: "Recipes saved",
			},
		),
		ContactSubmissions: f.NewCounter(
			prometheus.CounterOpts{
				Name: "cookbot_contact_submissions_total",
				Help: "Contact form submissions accepted",
			},
		),
	}
}
