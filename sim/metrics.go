package sim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/powellquiring/versebot/bot"
)

const (
	ResultSolved = "solved"
	ResultFailed = "failed"
	ResultError  = "error"
)

type Metrics struct {
	Games   *prometheus.CounterVec
	Guesses *prometheus.HistogramVec
}

// NewMetrics registers the simulation metrics with reg, nil leaves them unregistered
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Games: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "versebot_games_total",
			Help: "Games played by strategy and result",
		}, []string{"strategy", "result"}),
		Guesses: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "versebot_game_guesses",
			Help:    "Guesses needed to solve a game",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		}, []string{"strategy"}),
	}
}

func (m *Metrics) observe(strategy string, result bot.Result, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.Games.WithLabelValues(strategy, ResultError).Inc()
	case result.Success:
		m.Games.WithLabelValues(strategy, ResultSolved).Inc()
		m.Guesses.WithLabelValues(strategy).Observe(float64(result.GuessCount))
	default:
		m.Games.WithLabelValues(strategy, ResultFailed).Inc()
	}
}
