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

package cordic

import "fmt"

//go:generate go run ../cmd/cordicgen -n 16 -pkg cordic -output table_gen.go

// MaxIterations is the length of the default arctangent table and therefore
// the largest iteration count [Rotate] accepts.
const MaxIterations = len(atanTable)

// Gain returns the CORDIC gain compensation K (about 0.607253) in fixed point.
// The kernel starts every rotation from (K, 0) so the result has unit length.
func Gain() Fixed {
	return gain
}

// Table is an immutable sequence of arctangent constants: entry i is
// arctan(2^-i) in the same fixed-point scale as the rotation angle.
type Table struct {
	entries []Fixed
}

var defaultTable = mustTable(atanTable[:])

// Default returns the precomputed 16-entry table used by [Rotate].
func Default() *Table {
	return defaultTable
}

// NewTable validates entries and returns a table holding a copy of them.
// Entries must be non-empty, positive and strictly decreasing.
func NewTable(entries []Fixed) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidTable)
	}
	for i, e := range entries {
		if e <= 0 {
			return nil, fmt.Errorf("%w: entry %d is %d, want > 0", ErrInvalidTable, i, e)
		}
		if i > 0 && e >= entries[i-1] {
			return nil, fmt.Errorf("%w: entry %d (%d) is not below entry %d (%d)",
				ErrInvalidTable, i, e, i-1, entries[i-1])
		}
	}
	t := &Table{entries: make([]Fixed, len(entries))}
	copy(t.entries, entries)
	return t, nil
}

func mustTable(entries []Fixed) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries, which is also the maximum iteration count.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns entry i. It panics if i is out of range.
func (t *Table) At(i int) Fixed {
	return t.entries[i]
}

// Entries returns a copy of the table entries.
func (t *Table) Entries() []Fixed {
	out := make([]Fixed, len(t.entries))
	copy(out, t.entries)
	return out
}

// Coverage returns the sum of all entries: the largest |theta| the rotation
// can reach. Angles beyond it do not converge.
func (t *Table) Coverage() Fixed {
	var sum int64
	for _, e := range t.entries {
		sum += int64(e)
	}
	f, _ := narrow(sum)
	return f
}

// checkIterations rejects counts outside [1, t.Len()].
func (t *Table) checkIterations(iterations int) error {
	if iterations < 1 || iterations > len(t.entries) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidIterationCount, iterations, len(t.entries))
	}
	return nil
}
