package main

import (
	"flag"
	"fmt"
	"github.com/gnome/brickyard/filter"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"filterMatchingParts - Filter a parts catalog to part numbers present in both of two part number lists.\n" +
			"Usage:\n" +
			"filterMatchingParts [options] -a listA.txt -b listB.txt -i parts.csv -o parts_matching.csv\n\n")
	flag.PrintDefaults()
}

func main() {
	listA := flag.String("a", "", "First part number list. One part number per line. May be gzipped.")
	listB := flag.String("b", "", "Second part number list. One part number per line. May be gzipped.")
	input := flag.String("i", "", "Input parts catalog in CSV format. Header must include a part_num column.")
	output := flag.String("o", "", "Output CSV file. Written next to a .tmp file and renamed into place on success.")
	plotCounts := flag.Bool("plot", false, "Print a terminal graph of matching parts per category. Requires a part_cat_id column.")
	plotFile := flag.String("plotFile", "", "Save a bar chart of matching parts per category (e.g. counts.png). Requires a part_cat_id column.")
	verbose := flag.Int("verbose", 0, "Set to 1 for run progress, 2 to log each kept part number.")
	flag.Parse()
	flag.Usage = usage

	if *listA == "" || *listB == "" || *input == "" || *output == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -a, -b, -i, and -o")
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
