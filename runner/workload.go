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

package runner

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hashrand/rng"
	"hashrand/stats"
)

// Workload describes one report run.
type Workload struct {
	// Count is the length of each generated sequence.
	Count int `yaml:"count"`
	// Bins is the bin count for the uniformity test.
	Bins int `yaml:"bins"`
	// Alpha and Beta are the shape parameters forwarded to the beta-like
	// generator. Only (2, 2) behavior is implemented; see rng.
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	// Baseline also runs a math/rand reference sequence through the
	// uniformity test for comparison.
	Baseline bool `yaml:"baseline"`
}

// Load reads a workload YAML file. An empty path returns the defaults.
func Load(path string) (*Workload, error) {
	wl := &Workload{
		Count:    rng.DefaultCount,
		Bins:     stats.DefaultBins,
		Alpha:    2,
		Beta:     2,
		Baseline: true,
	}
	if path == "" {
		return wl, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workload config")
	}
	if err := yaml.Unmarshal(data, wl); err != nil {
		return nil, errors.Wrap(err, "failed to parse workload config")
	}
	return wl, nil
}
