package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanner_generations_total",
		Help: "Itinerary generation attempts by result",
	}, []string{"result"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripplanner_generation_duration_seconds",
		Help:    "Latency of the text-generation collaborator",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"result"})

	coordinateResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanner_coordinate_resolutions_total",
		Help: "Coordinate resolutions by provenance tier",
	}, []string{"provenance"})

	tripsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripplanner_trips_saved_total",
		Help: "Trip records persisted",
	})

	logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanner_logins_total",
		Help: "Login attempts by result",
	}, []string{"result"})
)

// ObserveGeneration records one call to the text-generation collaborator.
func ObserveGeneration(result string, duration time.Duration) {
	generationsTotal.WithLabelValues(result).Inc()
	generationDuration.WithLabelValues(result).Observe(duration.Seconds())
}

func ObserveResolution(provenance string) {
	coordinateResolutions.WithLabelValues(provenance).Inc()
}

func IncTripsSaved() {
	tripsSaved.Inc()
}

func ObserveLogin(result string) {
	logins.WithLabelValues(result).Inc()
}
