package briefing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fyrsmithlabs/briefd/internal/priority"
	"github.com/fyrsmithlabs/briefd/internal/source"
)

// outdoorInsightKeywords is the (slightly narrower) outdoor keyword set the
// insight rules use; "park" belongs only to the scorer's set.
var outdoorInsightKeywords = []string{"outdoor", "walk", "run", "errand", "shopping"}

// generateInsights derives the four advice lists from the gathered snapshot
// and the ranked priorities. Each category's messages appear in rule
// evaluation order.
func generateInsights(snap source.Snapshot, priorities []priority.PriorityItem, now time.Time) Insights {
	var out Insights

	// Weather impact.
	if snap.Weather != nil {
		temp := snap.Weather.Temperature
		code := snap.Weather.Code

		switch {
		case code <= 3 && temp >= 18 && temp <= 28:
			out.WeatherImpact = append(out.WeatherImpact,
				"Perfect weather today! Great for outdoor tasks or walks between meetings.")
		case code >= 50:
			out.WeatherImpact = append(out.WeatherImpact,
				"Rainy weather expected. Focus on indoor tasks and remote meetings.")
		case temp < 10:
			out.WeatherImpact = append(out.WeatherImpact,
				"Cold day ahead. Dress warmly for any outdoor activities.")
		case temp > 30:
			out.WeatherImpact = append(out.WeatherImpact,
				"Hot day! Stay hydrated and consider early morning or evening for outdoor tasks.")
		}

		outdoorTasks := 0
		for _, t := range snap.Tasks {
			title := strings.ToLower(t.Content)
			for _, kw := range outdoorInsightKeywords {
				if strings.Contains(title, kw) {
					outdoorTasks++
					break
				}
			}
		}
		if outdoorTasks > 0 && code >= 50 {
			out.WeatherImpact = append(out.WeatherImpact,
				fmt.Sprintf("Consider rescheduling %d outdoor task(s) due to poor weather.", outdoorTasks))
		}
	}

	// Schedule advice.
	var upcoming []source.Event
	for _, e := range snap.Events {
		if e.Start == nil {
			continue
		}
		hoursUntil := e.Start.Sub(now).Hours()
		if hoursUntil > 0 && hoursUntil < 4 {
			upcoming = append(upcoming, e)
		}
	}
	if len(upcoming) > 0 {
		next := upcoming[0]
		hoursUntil := next.Start.Sub(now).Hours()
		if hoursUntil < 1 {
			out.ScheduleAdvice = append(out.ScheduleAdvice,
				fmt.Sprintf("Meeting %q starts in %d minutes!", next.Summary, int(math.Round(hoursUntil*60))))
		} else {
			out.ScheduleAdvice = append(out.ScheduleAdvice,
				fmt.Sprintf("You have %d meeting(s) in the next 4 hours. Complete quick tasks now.", len(upcoming)))
		}
	}

	if len(snap.Events) >= 5 {
		out.ScheduleAdvice = append(out.ScheduleAdvice,
			"Heavy meeting day! Schedule breaks to avoid burnout.")
	} else if len(snap.Events) == 0 {
		out.ScheduleAdvice = append(out.ScheduleAdvice,
			"No meetings today - perfect for deep focus work!")
	}

	// Energy optimization.
	highPriorityTasks := 0
	for _, p := range priorities {
		if p.Type == priority.KindTask && p.Importance >= 7 {
			highPriorityTasks++
		}
	}
	if highPriorityTasks > 0 {
		hour := now.Hour()
		switch {
		case hour >= 9 && hour < 12:
			out.EnergyOptimization = append(out.EnergyOptimization,
				"You're in peak morning hours (9-12 AM) - tackle your most important tasks now!")
		case hour >= 13 && hour < 15:
			out.EnergyOptimization = append(out.EnergyOptimization,
				"Post-lunch dip (1-3 PM) - good time for lighter tasks, meetings, or organizational work.")
		case hour >= 15 && hour < 17:
			out.EnergyOptimization = append(out.EnergyOptimization,
				"Afternoon recovery (3-5 PM) - second window for focused work before EOD.")
		}
	}

	// Code-activity momentum.
	if len(snap.Contributions) > 0 {
		total := 0
		for _, c := range snap.Contributions {
			day, err := time.ParseInLocation("2006-01-02", c.Date, now.Location())
			if err != nil {
				continue
			}
			if now.Sub(day).Hours() <= 7*24 {
				total += c.Count
			}
		}
		if total > 0 {
			out.EnergyOptimization = append(out.EnergyOptimization,
				fmt.Sprintf("You've made %d contribution(s) this week. Keep the momentum going!", total))
		}
	}

	// Habit reminders, streak-aware framing.
	for _, habit := range snap.Habits {
		if habit.CompletedToday(now) {
			continue
		}
		switch {
		case habit.Streak >= 7:
			out.HabitReminders = append(out.HabitReminders,
				fmt.Sprintf("🔥 Protect your %d-day %q streak!", habit.Streak, habit.Name))
		case habit.Streak >= 3:
			out.HabitReminders = append(out.HabitReminders,
				fmt.Sprintf("Keep building: %q (%d days)", habit.Name, habit.Streak))
		default:
			out.HabitReminders = append(out.HabitReminders,
				fmt.Sprintf("Don't forget: %q", habit.Name))
		}
	}

	return out
}
