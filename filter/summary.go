package filter

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"image/color"
	"io"
)

// PrintSummary writes the three count lines for a run: matched rows,
// total input rows, and unique part numbers common to both lists.
func PrintSummary(out io.Writer, output string, s Stats) {
	fmt.Fprintf(out, "Created %s with %d matching parts\n", output, s.Matched)
	fmt.Fprintf(out, "Original table had %d parts\n", s.Total)
	fmt.Fprintf(out, "Found %d unique matching part numbers\n", s.Intersection)
}

// categorySeries flattens CategoryCounts into parallel slices ordered by
// category id so repeated runs plot identically.
func categorySeries(s Stats) ([]string, []float64) {
	cats := make([]string, 0, len(s.CategoryCounts))
	for cat := range s.CategoryCounts {
		cats = append(cats, cat)
	}
	slices.Sort(cats)
	counts := make([]float64, len(cats))
	for i := range cats {
		counts[i] = float64(s.CategoryCounts[cats[i]])
	}
	return cats, counts
}

// PlotCategories prints a terminal graph of matched parts per category
// followed by summary statistics. No-op when the input table had no
// category column or nothing matched.
func PlotCategories(s Stats) {
	cats, counts := categorySeries(s)
	if len(counts) == 0 {
		return
	}
	fmt.Printf("matching parts per category (%d categories, ascending category id)\n", len(cats))
	fmt.Println(asciigraph.Plot(counts, asciigraph.Height(10), asciigraph.Precision(0)))
	fmt.Printf("mean parts per category: %0.2f\tstdev: %0.2f\n", stat.Mean(counts, nil), stat.StdDev(counts, nil))
}

// SaveCategoryPlot writes a bar chart of matched parts per category to
// filename. Format follows the file extension (e.g. .png, .pdf).
func SaveCategoryPlot(s Stats, filename string) {
	cats, counts := categorySeries(s)
	if len(counts) == 0 {
		return
	}

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(10))
	exception.PanicOnErr(err)
	bars.Color = color.RGBA{R: 70, G: 120, B: 200, A: 255}

	pl := plot.New()
	pl.Add(bars)
	pl.NominalX(cats...)
	pl.X.Label.Text = "Category"
	pl.Y.Label.Text = "Matching Parts"
	pl.Title.Text = "Matching parts per category"

	err = pl.Save(30*vg.Centimeter, 15*vg.Centimeter, filename)
	exception.PanicOnErr(err)
}
