package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wellness-assistant/internal/responder"
)

func chatCmd(opts *options) *cobra.Command {
	var (
		username string
		mood     string
		budget   float64
		days     int
		habits   []string
	)

	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Reply to a chat message",
		Example: `  wellness chat "I saved 2k today"
  wellness chat --budget 3000 --days 5 "hey"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := responder.Input{
				Text:     strings.Join(args, " "),
				Username: username,
				Mood:     mood,
				Habits:   habits,
			}
			if cmd.Flags().Changed("budget") {
				in.Budget = &budget
			}
			if cmd.Flags().Changed("days") {
				in.DaysToPayday = &days
			}

			out := opts.responder().Respond(in)
			return opts.print(cmd.OutOrStdout(), out.Category, out.Message)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "name used in the greeting")
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "current mood label")
	cmd.Flags().Float64Var(&budget, "budget", 0, "remaining budget")
	cmd.Flags().IntVar(&days, "days", 0, "days until payday")
	cmd.Flags().StringSliceVar(&habits, "habit", nil, "habit being tracked (repeatable)")
	return cmd
}

func checkInCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Ask a check-in question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), responder.CategoryCheckIn, opts.responder().CheckIn())
		},
	}
}

func challengeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "challenge",
		Short: "Suggest a savings challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), responder.CategoryChallenge, opts.responder().Challenge())
		},
	}
}

func swapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "swap",
		Short: "Suggest a health swap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), responder.CategoryHealthSwap, opts.responder().HealthSwap())
		},
	}
}

func alertCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert <budget> <days>",
		Short: "Render a low-funds alert",
		Example: `  wellness alert 3000 5
  wellness alert -- -50 5   # negative budgets go after --`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			budget, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid budget %q: %w", args[0], err)
			}
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid days %q: %w", args[1], err)
			}
			return opts.print(cmd.OutOrStdout(), responder.CategoryBudgetAlert, opts.responder().BudgetAlert(budget, days))
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before a negative budget: wellness alert -- -50 5)", err)
	})
	return cmd
}

func tipCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tip [context]",
		Short: "Show the wellness tip for a context",
		Long: `Show the wellness tip for a context label.

Known labels: stress, budget relief, detox, mental health. Anything else gets the generic tip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tip := opts.responder().WellnessTip(strings.Join(args, " "))
			return opts.print(cmd.OutOrStdout(), responder.CategoryContextTip, tip)
		},
	}
}

func poolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "Print every response pool as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := responder.Pools()

			contexts := make([]string, 0, len(p.ContextTips))
			for k := range p.ContextTips {
				contexts = append(contexts, k)
			}
			sort.Strings(contexts)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"decorative_symbols":     p.DecorativeSymbols,
				"encouragements":         p.Encouragements,
				"setbacks":               p.Setbacks,
				"check_in_questions":     p.CheckInQuestions,
				"budget_alert_templates": p.BudgetAlertTemplates,
				"challenge_suggestions":  p.ChallengeSuggestions,
				"swap_examples":          p.SwapExamples,
				"context_tips":           p.ContextTips,
				"contexts":               contexts,
				"categories":             responder.Categories(),
			})
		},
	}
}
