// Copyright 2026 The Hashrand Authors
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
	"crypto/rand"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hashrand/rng"
	"hashrand/runner"
)

var (
	workloadCfgPath string

	cmd = &cobra.Command{
		Use:   "hashrand",
		Short: "Hash-whitened xorshift generator with a uniformity report",
		RunE:  runReport,
	}
)

func init() {
	cmd.Flags().StringVar(&workloadCfgPath, "workload", "", "Path to workload YAML (defaults apply when omitted)")
}

func runReport(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	log := slog.With()

	wl, err := runner.Load(workloadCfgPath)
	if err != nil {
		return err
	}
	log.Info("Load workload configuration", slog.Any("workloadConfig", wl))

	gen, err := rng.New(rand.Reader, wl.Count)
	if err != nil {
		return err
	}
	return runner.Run(wl, gen)
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
