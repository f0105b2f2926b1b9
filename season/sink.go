package season

import "github.com/tylacb11-spec/lienquan-sub000/models"

// NewsSink receives structured news events as the engine produces them.
// Fire-and-forget: the engine never reads anything back.
type NewsSink interface {
	Emit(item models.NewsItem)
}

// Notifier receives short human-team-relevant notices. Purely
// observational.
type Notifier interface {
	Notify(message, severity string)
}

// NopSink discards news. Used by tests and headless simulation.
type NopSink struct{}

func (NopSink) Emit(models.NewsItem) {}

// NopNotifier discards notices.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string) {}
