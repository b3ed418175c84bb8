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

import "testing"

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    envConfig
		wantErr bool
	}{
		{"empty", nil, envConfig{}, false},
		{"workers", map[string]string{"CORDIC_WORKERS": "3"}, envConfig{Workers: 3}, false},
		{"bad workers", map[string]string{"CORDIC_WORKERS": "many"}, envConfig{}, true},
		{"negative workers", map[string]string{"CORDIC_WORKERS": "-2"}, envConfig{}, true},
		{"no parallel", map[string]string{"CORDIC_NO_PARALLEL": "1"}, envConfig{NoParallel: true}, false},
		{"no parallel false", map[string]string{"CORDIC_NO_PARALLEL": "false"}, envConfig{}, false},
		{"no parallel word", map[string]string{"CORDIC_NO_PARALLEL": "yes"}, envConfig{NoParallel: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEnv(func(k string) string { return tt.env[k] })
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name string
		flag int
		env  envConfig
		want int
	}{
		{"defaults", 0, envConfig{}, 0},
		{"flag", 4, envConfig{Workers: 2}, 4},
		{"env", 0, envConfig{Workers: 2}, 2},
		{"no parallel wins", 4, envConfig{Workers: 2, NoParallel: true}, 1},
	}
	for _, tt := range tests {
		if got := resolveWorkers(tt.flag, tt.env); got != tt.want {
			t.Errorf("%s: resolveWorkers() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
