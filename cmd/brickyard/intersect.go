package main

import (
	"flag"
	"fmt"
	"github.com/gnome/brickyard/idset"
	"github.com/vertgenlab/gonomics/exception"
)

func intersectUsage(intersectFlags *flag.FlagSet) {
	fmt.Print(
		"intersect - intersect two part number lists\n\n" +
			"Usage:\n" +
			"  brickyard intersect -a listA.txt -b listB.txt > common.txt\n\n" +
			"Lists do not need to be sorted. Output is sorted, one part number per line.\n\n" +
			"Options:\n")
	intersectFlags.PrintDefaults()
}

func runIntersect(args []string) {
	var err error
	intersectFlags := flag.NewFlagSet("intersect", flag.ExitOnError)

	listA := intersectFlags.String("a", "", "First part number list. One part number per line.")
	listB := intersectFlags.String("b", "", "Second part number list. One part number per line.")
	output := intersectFlags.String("o", "stdout", "Output part number list.")

	err = intersectFlags.Parse(args)
	exception.PanicOnErr(err)
	intersectFlags.Usage = func() { intersectUsage(intersectFlags) }

	if *listA == "" || *listB == "" {
		intersectFlags.Usage()
		errExit("\nERROR: must have inputs for -a and -b")
	}

	idset.Write(*output, idset.Intersect(idset.Read(*listA), idset.Read(*listB)))
}
