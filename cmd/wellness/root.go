package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"wellness-assistant/internal/responder"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	seed    uint64
	asJSON  bool
	seedSet bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wellness",
		Short: "💡 Financial wellness replies from the terminal",
		Long: `wellness runs the keyword responder locally: chat replies, check-ins,
challenges, health swaps, low-funds alerts and wellness tips.

Use --seed for reproducible picks.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.seedSet = cmd.Flags().Changed("seed")
		},
	}

	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed the random picks for reproducible output")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print replies as JSON")

	root.AddCommand(
		chatCmd(opts),
		checkInCmd(opts),
		challengeCmd(opts),
		swapCmd(opts),
		alertCmd(opts),
		tipCmd(opts),
		poolsCmd(),
	)
	return root
}

// responder builds a Responder, seeded when --seed was given.
func (o *options) responder() *responder.Responder {
	if !o.seedSet {
		return responder.New()
	}
	return responder.New(responder.WithPicker(rand.New(rand.NewPCG(o.seed, o.seed))))
}

// reply is the JSON shape printed with --json, matching the HTTP envelope.
type reply struct {
	Msg      string `json:"msg"`
	Category string `json:"category,omitempty"`
}

func (o *options) print(w io.Writer, category responder.Category, msg string) error {
	if !o.asJSON {
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(reply{Msg: msg, Category: category.String()})
}
