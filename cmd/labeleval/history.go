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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shrlab/labeleval/config"
	"github.com/shrlab/labeleval/storage"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed evaluation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := historyPath
			if path == "" && flags.configPath != "" {
				cfg, err := config.Load(flags.configPath)
				if err != nil {
					return err
				}
				path = cfg.Output.History
			}
			if path == "" {
				return fmt.Errorf("no history database: pass --history or configure output.history")
			}

			store, err := storage.NewSQLiteStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tCREATED\tSAMPLES\tHAMMING\tJACCARD\tSUBSET\tMICRO F1")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
					r.RunID, r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Samples, r.HammingLoss, r.JaccardSamples, r.SubsetAccuracy, r.MicroF1)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "run-history SQLite path")

	return cmd
}
