package reservation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	transitionReserve   = "reserve"
	transitionUnreserve = "unreserve"
)

// Проигранные гонки за флаг — прямое наблюдение за контрактом
// "ровно один победитель".
var conflictsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "registry_reservation_conflicts_total",
		Help: "Number of reservation transitions rejected by the guard.",
	},
	[]string{"transition"},
)
