// Package metrics define os contadores e histogramas Prometheus do serviço
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rank_api"

var (
	// HTTPRequests conta as requisições por método, rota e status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP processadas.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration mede a latência das requisições
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ScoresSubmitted conta as notas submetidas com sucesso
	ScoresSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_submitted_total",
			Help:      "Total de notas aplicadas a ranks.",
		},
	)

	// RanksCreated conta os itens criados
	RanksCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranks_created_total",
			Help:      "Total de itens de ranking criados.",
		},
	)

	// UsersCreated conta os usuários cadastrados
	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Total de usuários cadastrados.",
		},
	)
)
