package briefing

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/briefd/internal/metrics"
	"github.com/fyrsmithlabs/briefd/internal/priority"
	"github.com/fyrsmithlabs/briefd/internal/source"
	"github.com/fyrsmithlabs/briefd/internal/timeblock"
	"github.com/fyrsmithlabs/briefd/internal/weather"
)

// topPriorityCount is how many items the briefing's headline list carries.
const topPriorityCount = 3

// Generator assembles daily briefings from the configured providers.
type Generator struct {
	providers source.Providers
	patterns  []source.EnergyPattern
	window    timeblock.Window
	name      string
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithEnergyPatterns supplies historical (hour, weekday) energy scores to
// bias slot matching.
func WithEnergyPatterns(patterns []source.EnergyPattern) Option {
	return func(g *Generator) { g.patterns = patterns }
}

// WithWindow overrides the planning day window.
func WithWindow(w timeblock.Window) Option {
	return func(g *Generator) { g.window = w }
}

// WithName sets the name used in greetings.
func WithName(name string) Option {
	return func(g *Generator) { g.name = name }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithClock overrides the clock. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a briefing generator over the given providers.
func NewGenerator(providers source.Providers, logger *zap.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{
		providers: providers,
		window:    timeblock.DefaultWindow,
		name:      "there",
		logger:    logger.Named("briefing"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate gathers every integration and assembles one briefing.
//
// There is no fatal error path: a failed integration degrades to an empty
// value and shows up as false in IntegrationStatus, so the caller always
// receives a usable (possibly partial) briefing.
func (g *Generator) Generate(ctx context.Context) *DailyBriefing {
	started := g.now()

	snap := source.Gather(ctx, g.providers)
	for name, ok := range snap.Status {
		g.metrics.ObserveFetch(name, ok)
		if !ok {
			g.logger.Warn("integration unavailable", zap.String("source", name))
		}
	}

	now := g.now()
	factors := priority.Factors{
		Tasks:          snap.Tasks,
		Events:         snap.Events,
		Weather:        snap.Weather,
		Habits:         snap.Habits,
		Activity:       snap.Activity,
		EnergyPatterns: g.patterns,
	}

	ranked := priority.RankAll(factors, now)
	top := ranked
	if len(top) > topPriorityCount {
		top = top[:topPriorityCount]
	}
	quickWins := priority.QuickWins(factors, now)
	mustDo := priority.MustDoFrom(ranked)

	planner := timeblock.NewPlanner(g.window, now)
	suggestions := planner.Suggest(snap.Tasks, snap.Events, g.patterns)
	conflicts := FindConflicts(snap.Tasks, snap.Events, now.Location())

	insights := generateInsights(snap, ranked, now)
	mood := determineMood(len(snap.Tasks), len(snap.Events), len(mustDo))

	weatherSummary := "Weather data unavailable"
	if snap.Weather != nil {
		weatherSummary = fmt.Sprintf("%d°C, %s",
			int(math.Round(snap.Weather.Temperature)), weather.Describe(snap.Weather.Code))
	}

	completedHabits := 0
	for _, h := range snap.Habits {
		if h.CompletedToday(now) {
			completedHabits++
		}
	}

	b := &DailyBriefing{
		Date: now,
		Summary: Summary{
			TotalTasks:      len(snap.Tasks),
			TotalEvents:     len(snap.Events),
			CompletedHabits: completedHabits,
			WeatherSummary:  weatherSummary,
			OverallMood:     mood,
		},
		Priorities: Priorities{
			Top3:      top,
			QuickWins: quickWins,
			MustDo:    mustDo,
		},
		Insights: insights,
		Schedule: Schedule{
			Suggestions: suggestions,
			Conflicts:   conflicts,
		},
		IntegrationStatus: snap.Status,
	}

	g.metrics.ObserveBriefing(g.now().Sub(started))
	g.logger.Info("briefing generated",
		zap.Int("tasks", len(snap.Tasks)),
		zap.Int("events", len(snap.Events)),
		zap.Int("mustDo", len(mustDo)),
		zap.String("mood", string(mood)))

	return b
}

// Greeting renders the salutation for a generated briefing.
func (g *Generator) Greeting(b *DailyBriefing) string {
	return Greeting(b, g.name, g.now())
}

// FocusScore gathers the integrations and computes the day's focus score.
func (g *Generator) FocusScore(ctx context.Context) int {
	snap := source.Gather(ctx, g.providers)
	return FocusScore(snap.Tasks, snap.Events, snap.Activity)
}
