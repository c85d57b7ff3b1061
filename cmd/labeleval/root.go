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
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	envFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "labeleval",
		Short: "Evaluate a multi-label classifier from generated text",
		Long: `labeleval aligns model-generated prediction text against ground-truth
multi-label annotations and computes the standard multi-label metric
suite: per-class accuracy, Hamming loss, samples-averaged Jaccard,
subset accuracy, and a full classification report.

Ground truth arrives as a spreadsheet or CSV with one binary column per
category; predictions arrive as line-delimited JSON records of generated
text. Artifacts are written to the configured output directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.envFile != "" {
				if err := godotenv.Load(flags.envFile); err != nil && !os.IsNotExist(err) {
					logrus.Warnf("failed to load env file %s: %v", flags.envFile, err)
				}
			}
			level, err := logrus.ParseLevel(flags.logLevel)
			if err != nil {
				logrus.Warnf("unknown log level %q, using info", flags.logLevel)
				level = logrus.InfoLevel
			}
			logrus.SetLevel(level)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "path to an optional env file")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setLogFormat applies the config's logging format to the standard
// logger the pipeline uses.
func setLogFormat(format string) error {
	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
