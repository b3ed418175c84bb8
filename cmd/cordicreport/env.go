// Copyright 2025 go-cordic Authors
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
	"strconv"
)

// envConfig holds settings read from the environment at startup.
type envConfig struct {
	Workers    int
	NoParallel bool
}

func loadEnv() (envConfig, error) {
	return parseEnv(os.Getenv)
}

func parseEnv(getenv func(string) string) (envConfig, error) {
	var c envConfig
	if v := getenv("CORDIC_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c, fmt.Errorf("CORDIC_WORKERS=%q: want a non-negative integer", v)
		}
		c.Workers = n
	}
	if v := getenv("CORDIC_NO_PARALLEL"); v != "" {
		// Any non-empty value is considered true, but also parse as bool
		b, err := strconv.ParseBool(v)
		c.NoParallel = err != nil || b
	}
	return c, nil
}

// resolveWorkers picks the worker count: CORDIC_NO_PARALLEL wins, then an
// explicit flag, then CORDIC_WORKERS. Zero means GOMAXPROCS.
func resolveWorkers(flagValue int, env envConfig) int {
	switch {
	case env.NoParallel:
		return 1
	case flagValue > 0:
		return flagValue
	default:
		return env.Workers
	}
}
