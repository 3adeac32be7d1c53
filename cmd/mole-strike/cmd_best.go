package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/storage"
)

type bestOutput struct {
	Best    int    `json:"best"`
	Backend string `json:"backend"`
	Slot    string `json:"slot"`
}

func newBestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best",
		Short: "Print the stored best score",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			slots, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer slots.Close()

			best := storage.NewBestScore(slots, constants.BestScoreSlot).Load(context.Background())

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(bestOutput{
					Best:    best,
					Backend: cfg.Storage.Backend,
					Slot:    constants.BestScoreSlot,
				})
			}
			if best == 0 {
				fmt.Fprintf(out, "Best: %s\n", constants.NoBestMarker)
				return nil
			}
			fmt.Fprintf(out, "Best: %d\n", best)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
