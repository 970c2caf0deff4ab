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

// Package runner is the reporting consumer of the generator core. It
// receives finite sequences and summary statistics and prints them; it
// computes nothing the core does not hand it.
package runner

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"hashrand/rng"
	"hashrand/stats"
)

// rejectionLevel is the significance threshold the report applies when
// wording the chi-square verdict.
const rejectionLevel = 0.05

// Run drives one generator session: it produces the four distributions,
// tests the uniform ones for uniformity, summarizes all of them and logs
// the report. With Baseline set it also runs a math/rand reference
// sequence of the same length through the same test.
func Run(wl *Workload, gen *rng.Generator) error {
	slog.Info("Running workload", slog.Any("workload", *wl))

	dists, err := gen.GenerateDistributions(wl.Alpha, wl.Beta)
	if err != nil {
		return err
	}

	if err := printTested("uniform-x", dists.UniformX, wl.Bins); err != nil {
		return err
	}
	if err := printTested("uniform-y", dists.UniformY, wl.Bins); err != nil {
		return err
	}
	printSummary("beta-x", stats.Summarize(dists.BetaX))
	printSummary("beta-y", stats.Summarize(dists.BetaY))

	if wl.Baseline {
		base := make([]float64, wl.Count)
		for i := range base {
			base[i] = rand.Float64()
		}
		if err := printTested("baseline-stdlib", base, wl.Bins); err != nil {
			return err
		}
	}
	return nil
}

func printTested(name string, seq []float64, bins int) error {
	report, err := stats.TestUniformity(seq, bins)
	if err != nil {
		return err
	}
	verdict := "uniformity rejected"
	if report.PValue > rejectionLevel {
		verdict = "uniformity not rejected"
	}

	s := stats.Summarize(seq)
	slog.Info(fmt.Sprintf(`%-16s n=%d  mean %.4f  stddev %.4f  p50 %.3f - p95 %.3f - p99 %.3f - max %.3f
			chi-square %8.3f  p-value %.4f  (%s)`,
		name, s.Count, s.Mean, s.StdDev, s.P50, s.P95, s.P99, s.Max,
		report.Statistic, report.PValue, verdict))
	return nil
}

func printSummary(name string, s stats.Summary) {
	slog.Info(fmt.Sprintf("%-16s n=%d  mean %.4f  stddev %.4f  p50 %.3f - p95 %.3f - p99 %.3f - max %.3f",
		name, s.Count, s.Mean, s.StdDev, s.P50, s.P95, s.P99, s.Max))
}
