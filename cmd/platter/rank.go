package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Platter/internal/planner"
	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank candidates from a JSON request file",
		Long: `Rank reads a request of the form

  {"goal": [600, 40, 60, 20],
   "candidates": [{"id": "a", "name": "Salad", "attributes": [550, 35, 40, 18]}]}

and prints the ranking as JSON. Use --input - to read from stdin.`,
		Example: `  platter rank --input request.json
  platter rank --input request.json --anchor goal --frontier`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			input, _ := cmd.Flags().GetString("input")
			anchorName, _ := cmd.Flags().GetString("anchor")
			frontier, _ := cmd.Flags().GetBool("frontier")

			req, err := readRankRequest(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			if anchorName != "" {
				req.Anchor = anchorName
			}
			req.Source = planner.SourceCLI

			anchor, err := ranking.ParseAnchor(cfg.Ranking.Anchor)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Logging, cmd.ErrOrStderr())
			scorer := ranking.NewScorer(anchor, frontier || cfg.Ranking.FrontierEnabled, logger)

			res, err := planner.New(scorer, nil, nil, cfg, logger).Rank(cmd.Context(), req)
			if err != nil {
				if code := planner.ErrorCode(err); code != "" {
					return fmt.Errorf("rank failed (%s): %w", code, err)
				}
				return fmt.Errorf("rank failed: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().String("input", "", "request file (- for stdin)")
	cmd.Flags().String("anchor", "", "reference point anchor: candidate or goal")
	cmd.Flags().Bool("frontier", false, "include the Pareto frontier")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readRankRequest(stdin io.Reader, path string) (planner.RankRequest, error) {
	var req planner.RankRequest

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("decode input: %w", err)
	}
	return req, nil
}
