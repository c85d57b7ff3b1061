// Copyright 2026 The labeleval Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrlab/labeleval/config"
	"github.com/shrlab/labeleval/pipeline"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	var (
		truthPath   string
		predPath    string
		outputDir   string
		historyPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one evaluation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if flags.configPath != "" {
				loaded, err := config.Load(flags.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags override the file.
			if truthPath != "" {
				cfg.Inputs.Truth = truthPath
			}
			if predPath != "" {
				cfg.Inputs.Predictions = predPath
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}
			if historyPath != "" {
				cfg.Output.History = historyPath
			}

			if err := setLogFormat(cfg.Logging.Format); err != nil {
				return err
			}

			p, err := pipeline.New(cfg)
			if err != nil {
				return err
			}
			defer p.Close()

			result, err := p.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			r := result.Report
			fmt.Fprintf(cmd.OutOrStdout(), "Run %s: %d samples, %d classes\n",
				result.RunID, r.Samples, len(r.Classes))
			fmt.Fprintf(cmd.OutOrStdout(), "Hamming loss:      %.4f\n", r.HammingLoss)
			fmt.Fprintf(cmd.OutOrStdout(), "Jaccard (samples): %.4f\n", r.JaccardSamples)
			fmt.Fprintf(cmd.OutOrStdout(), "Subset accuracy:   %.4f\n", r.SubsetAccuracy)
			fmt.Fprintf(cmd.OutOrStdout(), "Artifacts written to %s\n", cfg.Output.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&truthPath, "truth", "", "ground-truth table (overrides config)")
	cmd.Flags().StringVar(&predPath, "predictions", "", "prediction JSONL file (overrides config)")
	cmd.Flags().StringVar(&outputDir, "out", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&historyPath, "history", "", "run-history SQLite path (overrides config)")

	return cmd
}
