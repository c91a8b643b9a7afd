package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/briefd/internal/briefing"
	"github.com/fyrsmithlabs/briefd/internal/priority"
	"github.com/fyrsmithlabs/briefd/internal/timeblock"
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Print today's briefing",
	Long: `Generate one briefing and print it as text. Integrations without
credentials are skipped; a failed integration degrades to an empty section
instead of aborting the briefing.`,
	RunE: runBrief,
}

func runBrief(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	gen := a.generator()
	b := gen.Generate(ctx)

	fmt.Println(gen.Greeting(b))
	fmt.Println()
	fmt.Printf("%s | %d tasks, %d events, %d habits done\n",
		b.Summary.WeatherSummary, b.Summary.TotalTasks, b.Summary.TotalEvents, b.Summary.CompletedHabits)
	fmt.Println()

	printPriorities("Top Priorities", b.Priorities.Top3)
	printPriorities("Must Do", b.Priorities.MustDo)
	printPriorities("Quick Wins", b.Priorities.QuickWins)

	if len(b.Schedule.Conflicts) > 0 {
		fmt.Println("Conflicts:")
		for _, c := range b.Schedule.Conflicts {
			fmt.Printf("  ⚠️  %s\n", c)
		}
		fmt.Println()
	}

	if len(b.Schedule.Suggestions) > 0 {
		fmt.Println(timeblock.FormatSchedule(b.Schedule.Suggestions))
	}

	printInsights(b.Insights)
	printStatus(b)
	return nil
}

func printPriorities(heading string, items []priority.PriorityItem) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	for i, item := range items {
		fmt.Printf("  %d. %s (score %d)\n", i+1, item.Title, item.Score)
		if len(item.Reasoning) > 0 {
			fmt.Printf("     %s\n", strings.Join(item.Reasoning, "; "))
		}
	}
	fmt.Println()
}

func printInsights(in briefing.Insights) {
	lines := make([]string, 0,
		len(in.WeatherImpact)+len(in.ScheduleAdvice)+len(in.EnergyOptimization)+len(in.HabitReminders))
	lines = append(lines, in.WeatherImpact...)
	lines = append(lines, in.ScheduleAdvice...)
	lines = append(lines, in.EnergyOptimization...)
	lines = append(lines, in.HabitReminders...)
	if len(lines) == 0 {
		return
	}
	fmt.Println("Insights:")
	for _, l := range lines {
		fmt.Printf("  • %s\n", l)
	}
	fmt.Println()
}

func printStatus(b *briefing.DailyBriefing) {
	var down []string
	for name, ok := range b.IntegrationStatus {
		if !ok {
			down = append(down, name)
		}
	}
	if len(down) > 0 {
		fmt.Printf("Unavailable integrations: %s\n", strings.Join(down, ", "))
	}
}
