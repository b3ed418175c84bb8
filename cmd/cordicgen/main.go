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

// Command cordicgen generates the precomputed CORDIC arctangent table.
//
// Usage:
//
//	cordicgen -n 16 -pkg cordic -output table_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/cordicgen -n 16 -pkg cordic -output table_gen.go
//
// The output holds round(atan(2^-i) * 2^16) for i in [0, n) and the gain
// compensation 1/A(n), so the kernel never evaluates a transcendental
// function at run time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajroetker/go-cordic/internal/atangen"
)

var (
	entries    = flag.Int("n", 16, fmt.Sprintf("Number of table entries (1-%d)", atangen.MaxEntries))
	packageOut = flag.String("pkg", "cordic", "Output package name")
	outputFile = flag.String("output", "table_gen.go", "Output file")
)

func main() {
	flag.Parse()

	gen := &Generator{
		N:          *entries,
		PackageOut: *packageOut,
		OutputFile: *outputFile,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d-entry table in %s\n", gen.N, gen.OutputFile)
}
