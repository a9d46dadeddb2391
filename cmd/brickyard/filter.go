package main

import (
	"flag"
	"fmt"
	"github.com/gnome/brickyard/filter"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
)

func filterUsage(filterFlags *flag.FlagSet) {
	fmt.Print(
		"filter - filter a catalog to parts present in both of two part number lists\n\n" +
			"Usage:\n" +
			"  brickyard filter [options] -a listA.txt -b listB.txt -i parts.csv -o parts_matching.csv\n\n" +
			"Options:\n")
	filterFlags.PrintDefaults()
}

func runFilter(args []string) {
	var err error
	filterFlags := flag.NewFlagSet("filter", flag.ExitOnError)

	listA := filterFlags.String("a", "", "First part number list. One part number per line. May be gzipped.")
	listB := filterFlags.String("b", "", "Second part number list. One part number per line. May be gzipped.")
	input := filterFlags.String("i", "", "Input parts catalog in CSV format. Header must include a part_num column.")
	output := filterFlags.String("o", "", "Output CSV file. Written next to a .tmp file and renamed into place on success.")
	plotCounts := filterFlags.Bool("plot", false, "Print a terminal graph of matching parts per category. Requires a part_cat_id column.")
	plotFile := filterFlags.String("plotFile", "", "Save a bar chart of matching parts per category (e.g. counts.png). Requires a part_cat_id column.")
	verbose := filterFlags.Int("verbose", 0, "Set to 1 for run progress, 2 to log each kept part number.")

	err = filterFlags.Parse(args)
	exception.PanicOnErr(err)
	filterFlags.Usage = func() { filterUsage(filterFlags) }

	if *listA == "" || *listB == "" || *input == "" || *output == "" {
		filterFlags.Usage()
		errExit("\nERROR: must have inputs for -a, -b, -i, and -o")
	}

	stats, err := filter.MatchingParts(*listA, *listB, *input, *output, *verbose)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	filter.PrintSummary(os.Stdout, *output, stats)

	if *plotCounts {
		filter.PlotCategories(stats)
	}
	if *plotFile != "" {
		filter.SaveCategoryPlot(stats, *plotFile)
	}
}
