package source

import (
	"context"
	"sync"

	"github.com/fyrsmithlabs/briefd/internal/weather"
)

// Integration names used as Snapshot.Status keys.
const (
	StatusTasks    = "todoist"
	StatusCalendar = "calendar"
	StatusWeather  = "weather"
	StatusCodeHost = "github"
	StatusHabits   = "habits"
)

// TaskSource returns the tasks due today or overdue.
type TaskSource interface {
	DailyTasks(ctx context.Context) ([]Task, error)
}

// EventSource returns upcoming calendar events, capped at max.
type EventSource interface {
	UpcomingEvents(ctx context.Context, max int) ([]Event, error)
}

// WeatherSource returns a single current-conditions reading.
type WeatherSource interface {
	Current(ctx context.Context) (*weather.Observation, error)
}

// ActivitySource returns code-hosting activity and the contribution calendar.
type ActivitySource interface {
	RecentActivity(ctx context.Context) ([]Activity, error)
	Contributions(ctx context.Context) ([]ContributionDay, error)
}

// HabitSource lists habit records with their streak state.
type HabitSource interface {
	List(ctx context.Context) ([]Habit, error)
}

// Providers holds the configured integrations. Any field may be nil; a nil
// provider is reported as unavailable rather than an error.
type Providers struct {
	Tasks    TaskSource
	Events   EventSource
	Weather  WeatherSource
	Activity ActivitySource
	Habits   HabitSource
}

// Snapshot is the gathered input for one briefing. Status records, per
// integration, whether its fetch succeeded; a false entry means the
// corresponding field degraded to its zero value.
type Snapshot struct {
	Tasks         []Task
	Events        []Event
	Weather       *weather.Observation
	Activity      []Activity
	Contributions []ContributionDay
	Habits        []Habit
	Status        map[string]bool
}

// MaxBriefingEvents caps the calendar lookahead used for a briefing.
const MaxBriefingEvents = 20

// Gather fetches from every configured provider concurrently with settle-all
// semantics: one integration failing never cancels or blocks the others, it
// only degrades that integration's slice to empty and flips its Status entry.
// Gather itself never returns an error.
func Gather(ctx context.Context, p Providers) Snapshot {
	snap := Snapshot{Status: make(map[string]bool, 5)}

	var (
		wg sync.WaitGroup

		tasks    []Task
		events   []Event
		obs      *weather.Observation
		activity []Activity
		contribs []ContributionDay
		habits   []Habit

		tasksErr, eventsErr, weatherErr, activityErr, habitsErr error
	)

	if p.Tasks != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks, tasksErr = p.Tasks.DailyTasks(ctx)
		}()
	}
	if p.Events != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			events, eventsErr = p.Events.UpcomingEvents(ctx, MaxBriefingEvents)
		}()
	}
	if p.Weather != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obs, weatherErr = p.Weather.Current(ctx)
		}()
	}
	if p.Activity != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var aErr, cErr error
			activity, aErr = p.Activity.RecentActivity(ctx)
			contribs, cErr = p.Activity.Contributions(ctx)
			if aErr != nil {
				activityErr = aErr
			} else {
				activityErr = cErr
			}
		}()
	}
	if p.Habits != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			habits, habitsErr = p.Habits.List(ctx)
		}()
	}

	wg.Wait()

	snap.Status[StatusTasks] = p.Tasks != nil && tasksErr == nil
	snap.Status[StatusCalendar] = p.Events != nil && eventsErr == nil
	snap.Status[StatusWeather] = p.Weather != nil && weatherErr == nil && obs != nil
	snap.Status[StatusCodeHost] = p.Activity != nil && activityErr == nil
	snap.Status[StatusHabits] = p.Habits != nil && habitsErr == nil

	if tasksErr == nil {
		snap.Tasks = tasks
	}
	if eventsErr == nil {
		snap.Events = events
	}
	if weatherErr == nil {
		snap.Weather = obs
	}
	if activityErr == nil {
		snap.Activity = activity
		snap.Contributions = contribs
	}
	if habitsErr == nil {
		snap.Habits = habits
	}

	return snap
}
