package main

import (
	"flag"
	"fmt"
	"github.com/gnome/brickyard/idset"
	"github.com/gnome/brickyard/parts"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

func idsUsage(idsFlags *flag.FlagSet) {
	fmt.Print(
		"ids - extract a part number list from a catalog column\n\n" +
			"Usage:\n" +
			"  brickyard ids [options] -i parts.csv > part_numbers.txt\n\n" +
			"Output is sorted and deduplicated, one value per line.\n\n" +
			"Options:\n")
	idsFlags.PrintDefaults()
}

func runIds(args []string) {
	var err error
	idsFlags := flag.NewFlagSet("ids", flag.ExitOnError)

	input := idsFlags.String("i", "", "Input parts catalog in CSV format.")
	column := idsFlags.String("col", parts.KeyField, "Column to extract.")
	output := idsFlags.String("o", "stdout", "Output part number list.")

	err = idsFlags.Parse(args)
	exception.PanicOnErr(err)
	idsFlags.Usage = func() { idsUsage(idsFlags) }

	if *input == "" {
		idsFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}

	ids(*input, *column, *output)
}

func ids(input, column, output string) {
	rows, header := parts.GoReadToChan(input)
	idx := header.Index(column)
	if idx == -1 {
		log.Fatalf("ERROR: %s has no %s column in its header\n", input, column)
	}

	ans := make(idset.Set)
	for row := range rows {
		ans[row[idx]] = true
	}
	idset.Write(output, ans)
}
