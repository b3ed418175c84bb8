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
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-cordic/internal/atangen"
)

// Generator writes the arctangent table and gain constant as Go source.
type Generator struct {
	N          int    // number of table entries
	PackageOut string // package clause of the output file
	OutputFile string // path of the output file
}

// Run validates the parameters, generates the file and writes it.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Generate returns the formatted table source.
func (g *Generator) Generate() ([]byte, error) {
	if g.N < 1 || g.N > atangen.MaxEntries {
		return nil, fmt.Errorf("table length %d not in [1, %d]", g.N, atangen.MaxEntries)
	}
	if g.PackageOut == "" {
		return nil, fmt.Errorf("package name is required")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cordicgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.PackageOut)

	fmt.Fprintf(&buf, "// gain is 1/A(%d), the CORDIC gain compensation, in fixed point.\n", g.N)
	fmt.Fprintf(&buf, "const gain Fixed = %d\n\n", atangen.GainFixed(g.N))

	fmt.Fprintf(&buf, "// atanTable holds round(atan(2^-i) * 2^16) for i in [0, %d).\n", g.N)
	fmt.Fprintf(&buf, "var atanTable = [%d]Fixed{\n", g.N)
	for i, e := range atangen.Entries(g.N) {
		fmt.Fprintf(&buf, "\t%d, // atan(2^-%d)\n", e, i)
	}
	fmt.Fprintf(&buf, "}\n")

	// The table needs no imports; only formatting is applied.
	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}
