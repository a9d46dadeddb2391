// Package idset reads line-oriented part number lists and performs
// set operations on them.
package idset

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
)

// Set holds unique part numbers. Values are always true.
type Set map[string]bool

// Read parses a file with one part number per line into a Set.
// Empty lines are skipped. Input may be gzipped. Lines are taken
// verbatim, so part numbers starting with '#' are kept.
func Read(filename string) Set {
	ans := make(Set)
	in := fileio.EasyOpen(filename)
	for line, done := fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		if line == "" {
			continue
		}
		ans[line] = true
	}
	err := in.Close()
	exception.PanicOnErr(err)
	return ans
}

// Intersect returns a new Set with the part numbers present in both a and b.
func Intersect(a, b Set) Set {
	// range over the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	ans := make(Set)
	for id := range a {
		if b[id] {
			ans[id] = true
		}
	}
	return ans
}

// Sorted returns the part numbers in s in lexicographic order.
func Sorted(s Set) []string {
	ans := make([]string, 0, len(s))
	for id := range s {
		ans = append(ans, id)
	}
	slices.Sort(ans)
	return ans
}

// Write outputs s to filename in sorted order, one part number per line.
func Write(filename string, s Set) {
	out := fileio.EasyCreate(filename)
	for _, id := range Sorted(s) {
		fmt.Fprintln(out, id)
	}
	err := out.Close()
	exception.PanicOnErr(err)
}
