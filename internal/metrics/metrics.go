package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FundsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundledger_funds_created_total",
			Help: "Total number of funds created",
		},
	)

	ContributionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundledger_contributions_total",
			Help: "Total number of contribution attempts",
		},
		[]string{"status"},
	)

	SettlementsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundledger_settlements_total",
			Help: "Total number of goal-crossing settlements",
		},
	)

	RefundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundledger_refunds_total",
			Help: "Total number of refund attempts",
		},
		[]string{"status"},
	)

	TransferFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundledger_transfer_failures_total",
			Help: "Total number of failed outbound transfer batches",
		},
		[]string{"path"},
	)

	ExpiredActiveFunds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fundledger_expired_active_funds",
			Help: "Number of funds past their deadline that are still open",
		},
	)
)
