// Command give-me-the-odds prints the probability that the Millennium
// Falcon reaches Endor before the Death Star countdown expires.
//
// Usage:
//
//	give-me-the-odds [-verbose] <millennium-falcon.json> <empire.json>
//
// The probability is printed as a number in [0, 1]; -verbose adds the
// day-by-day itinerary behind it. Invalid input exits with status 1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/c3po"
)

func main() {
	log.SetFlags(0)
	if err := run(); err != nil {
		log.Fatalf("give-me-the-odds: %v", err)
	}
}

func run() error {
	verbose := flag.Bool("verbose", false, "print the day-by-day itinerary")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-verbose] <millennium-falcon.json> <empire.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	droid, err := c3po.New(flag.Arg(0))
	if err != nil {
		return err
	}

	if !*verbose {
		p, err := droid.GiveMeTheOdds(flag.Arg(1))
		if err != nil {
			return err
		}
		fmt.Println(p)

		return nil
	}

	res, p, err := droid.Plan(flag.Arg(1))
	if err != nil {
		return err
	}
	fmt.Println(p)
	fmt.Print(c3po.FormatItinerary(res, droid.Autonomy()))

	return nil
}
