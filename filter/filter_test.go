package filter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testCatalog string = "part_num,name,part_cat_id\n" +
	"3001,Brick 2 x 4,11\n" +
	"3002,\"Brick, 2 x 3\",11\n" +
	"3003,Brick 2 x 2,12\n" +
	"3004,Brick 1 x 1,12\n"

func writeInputs(t *testing.T, listA, listB, catalog string) (a, b, in, out string) {
	t.Helper()
	dir := t.TempDir()
	a = filepath.Join(dir, "a.txt")
	b = filepath.Join(dir, "b.txt")
	in = filepath.Join(dir, "parts.csv")
	out = filepath.Join(dir, "parts_matching.csv")
	var err error
	if err = os.WriteFile(a, []byte(listA), 0644); err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(b, []byte(listB), 0644); err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(in, []byte(catalog), 0644); err != nil {
		t.Fatal(err)
	}
	return
}

func TestMatchingParts(t *testing.T) {
	a, b, in, out := writeInputs(t, "3001\n3002\n3003\n", "3002\n3003\n3004\n", testCatalog)

	stats, err := MatchingParts(a, b, in, out, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Matched != 2 {
		t.Error("problem with matched count, expected 2, got", stats.Matched)
	}
	if stats.Total != 4 {
		t.Error("problem with total count, expected 4, got", stats.Total)
	}
	if stats.Intersection != 2 {
		t.Error("problem with intersection count, expected 2, got", stats.Intersection)
	}
	if stats.CategoryCounts["11"] != 1 || stats.CategoryCounts["12"] != 1 {
		t.Error("problem with category tally", stats.CategoryCounts)
	}

	firstRun, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	expected := "part_num,name,part_cat_id\n" +
		"3002,\"Brick, 2 x 3\",11\n" +
		"3003,Brick 2 x 2,12\n"
	if string(firstRun) != expected {
		t.Error("problem with filtered catalog content, got", string(firstRun))
	}

	// rerunning with unchanged inputs must give byte-identical output
	rerun, err := MatchingParts(a, b, in, out, 0)
	if err != nil {
		t.Fatal(err)
	}
	if rerun.Matched != stats.Matched || rerun.Total != stats.Total || rerun.Intersection != stats.Intersection {
		t.Error("problem with rerun counts", rerun, stats)
	}
	secondRun, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(firstRun, secondRun) {
		t.Error("problem with rerun, output not byte-identical")
	}
}

func TestMatchingPartsDisjoint(t *testing.T) {
	a, b, in, out := writeInputs(t, "3001\n3002\n", "3003\n3004\n", testCatalog)

	stats, err := MatchingParts(a, b, in, out, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Matched != 0 || stats.Intersection != 0 {
		t.Error("problem with disjoint lists, expected no matches", stats)
	}
	if stats.Total != 4 {
		t.Error("problem with total count on disjoint lists, expected 4, got", stats.Total)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "part_num,name,part_cat_id\n" {
		t.Error("problem with disjoint lists, output should be header only, got", string(content))
	}
}

func TestMatchingPartsNoCategoryColumn(t *testing.T) {
	catalog := "part_num,name\n3002,Brick\n"
	a, b, in, out := writeInputs(t, "3002\n", "3002\n", catalog)

	stats, err := MatchingParts(a, b, in, out, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Matched != 1 {
		t.Error("problem with matched count without category column, got", stats.Matched)
	}
	if stats.CategoryCounts != nil {
		t.Error("problem with category tally, should be nil without part_cat_id column")
	}
}

func TestMatchingPartsMissingKeyColumn(t *testing.T) {
	catalog := "color_id,name\n11,Brick 2 x 4\n"
	a, b, in, out := writeInputs(t, "3001\n", "3001\n", catalog)

	_, err := MatchingParts(a, b, in, out, 0)
	if err == nil {
		t.Error("problem with missing key column, expected an error")
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("problem with missing key column, output was created")
	}
	if _, statErr := os.Stat(out + ".tmp"); statErr == nil {
		t.Error("problem with missing key column, tmp output was created")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, "parts_matching.csv", Stats{Matched: 2, Total: 4, Intersection: 2})
	expected := "Created parts_matching.csv with 2 matching parts\n" +
		"Original table had 4 parts\n" +
		"Found 2 unique matching part numbers\n"
	if buf.String() != expected {
		t.Error("problem with summary output, got", buf.String())
	}
}

func TestCategorySeries(t *testing.T) {
	s := Stats{CategoryCounts: map[string]int{"12": 3, "11": 1}}
	cats, counts := categorySeries(s)
	if len(cats) != 2 || cats[0] != "11" || cats[1] != "12" {
		t.Error("problem with category ordering", cats)
	}
	if counts[0] != 1 || counts[1] != 3 {
		t.Error("problem with category counts", counts)
	}
}
