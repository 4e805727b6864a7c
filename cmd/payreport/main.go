/*
main.go - Weekly pay report

PURPOSE:
  Loads the roster data file and prints the weekly pay report: one row per
  employee with id, name, category, and computed weekly pay. This is the
  model's only binary; editing lives in the presentation layer, which calls
  the same roster/codec contract this tool uses.

COMMAND-LINE FLAGS:
  -data    Roster data file (default: employee.data)

EXAMPLES:
  # Report on the conventional data file
  ./payreport

  # Report on a specific file
  ./payreport -data=./backups/2026-08.data

ENVIRONMENT:
  No environment variables. All config via flags.

SEE ALSO:
  - roster: LoadFile and ordered access
  - employee: CalcPay
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/acme-machining/hr-roster/roster"
)

func main() {
	dataPath := flag.String("data", roster.DefaultDataFile, "roster data file")
	flag.Parse()

	r := roster.New()
	if err := r.LoadFile(*dataPath); err != nil {
		log.Fatalf("Failed to load roster from %s: %v", *dataPath, err)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tWEEKLY PAY")
	for _, rec := range r.Records() {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%s\n",
			rec.ID(), rec.Name(), rec.Category(), rec.CalcPay().Value.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
