// Package filter produces a parts catalog restricted to part numbers
// present in both of two externally supplied part number lists.
package filter

import (
	"fmt"
	"github.com/gnome/brickyard/idset"
	"github.com/gnome/brickyard/parts"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

// CategoryField is tallied per matching row when present in the header.
const CategoryField string = "part_cat_id"

// Stats reports the result of one filtering run.
type Stats struct {
	Matched        int            // rows written to the output table
	Total          int            // data rows in the input table
	Intersection   int            // unique part numbers present in both lists
	CategoryCounts map[string]int // matched rows per category, nil if the input has no category column
}

// MatchingParts filters the catalog table in input to rows whose part_num
// appears in both listA and listB, writing survivors to output in input
// order with the input schema. The output is renamed into place only after
// a clean finish. Returns an error before creating any output if the input
// table lacks a part_num column.
func MatchingParts(listA, listB, input, output string, verbose int) (Stats, error) {
	var s Stats
	setA := idset.Read(listA)
	setB := idset.Read(listB)
	common := idset.Intersect(setA, setB)
	s.Intersection = len(common)
	if verbose > 0 {
		log.Printf("read %d part numbers from %s, %d from %s, %d in common\n", len(setA), listA, len(setB), listB, len(common))
	}

	rows, header := parts.GoReadToChan(input)
	keyIdx := header.Index(parts.KeyField)
	if keyIdx == -1 {
		// drain so the reader goroutine can finish and close the input
		go func() {
			for range rows {
			}
		}()
		return s, fmt.Errorf("%s has no %s column in its header", input, parts.KeyField)
	}
	catIdx := header.Index(CategoryField)
	if catIdx != -1 {
		s.CategoryCounts = make(map[string]int)
	}

	out := parts.NewWriter(output, header)
	for row := range rows {
		s.Total++
		if !common[row[keyIdx]] {
			continue
		}
		out.Write(row)
		s.Matched++
		if catIdx != -1 {
			s.CategoryCounts[row[catIdx]]++
		}
		if verbose > 1 {
			log.Printf("keeping %s\n", row[keyIdx])
		}
	}
	err := out.Close()
	exception.PanicOnErr(err)
	return s, nil
}
