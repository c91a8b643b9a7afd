package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage tracked habits",
}

var habitTimeOfDay string

func init() {
	habitAddCmd.Flags().StringVar(&habitTimeOfDay, "time", "anytime", "preferred time of day (morning, afternoon, evening, anytime)")
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitDoneCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitRemoveCmd)
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		store, err := a.habitStore()
		if err != nil {
			return err
		}
		if err := store.Add(cmd.Context(), args[0], habitTimeOfDay); err != nil {
			return err
		}
		fmt.Printf("Tracking %q (%s)\n", args[0], habitTimeOfDay)
		return nil
	},
}

var habitDoneCmd = &cobra.Command{
	Use:   "done <name>",
	Short: "Mark a habit complete for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		store, err := a.habitStore()
		if err != nil {
			return err
		}
		if err := store.Complete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Done: %s\n", args[0])
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked habits and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		store, err := a.habitStore()
		if err != nil {
			return err
		}
		habits, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			fmt.Println("No habits tracked yet. Add one with: briefd habit add <name>")
			return nil
		}
		for _, h := range habits {
			streak := ""
			if h.Streak > 0 {
				streak = fmt.Sprintf("  %d-day streak", h.Streak)
			}
			fmt.Printf("  %-24s %s%s\n", h.Name, h.TimeOfDay, streak)
		}
		return nil
	},
}

var habitRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Stop tracking a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		store, err := a.habitStore()
		if err != nil {
			return err
		}
		if err := store.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed: %s\n", args[0])
		return nil
	},
}
