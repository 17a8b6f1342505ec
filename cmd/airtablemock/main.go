package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bayesimpact/airtablemock"
	"github.com/bayesimpact/airtablemock/formula"
)

func main() {
	// Define the flags
	pflag.String("check", "", "Compile the given filter formula and report whether it is supported")
	pflag.String("seed", "", "Load the given JSON fixture file into the mock")
	pflag.Bool("export", false, "Print the registry as a normalized JSON fixture to stdout (with --seed)")
	pflag.String("base", "", "Base ID to read from (with --seed)")
	pflag.String("table", "", "Table to read from (with --seed)")
	pflag.String("filter", "", "Filter formula applied to the listed records")
	pflag.String("view", "", "View name applied to the listed records")
	pflag.Parse()

	// Handle --check flag
	checkFormula := pflag.Lookup("check").Value.String()
	if checkFormula != "" {
		if _, err := formula.Compile(checkFormula); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
		return
	}

	// Handle --seed flag
	seedFile := pflag.Lookup("seed").Value.String()
	if seedFile != "" {
		if err := LoadConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		fixture, err := os.Open(seedFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening fixture file: %v\n", err)
			os.Exit(1)
		}
		defer fixture.Close()

		if err := airtablemock.ImportJSON(fixture); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing fixture: %v\n", err)
			os.Exit(1)
		}

		// Handle --export flag: write the normalized fixture back out
		if pflag.Lookup("export").Value.String() == "true" {
			if err := airtablemock.ExportJSON(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error exporting registry: %v\n", err)
				os.Exit(1)
			}
			return
		}

		baseID := pflag.Lookup("base").Value.String()
		tableName := pflag.Lookup("table").Value.String()
		if baseID == "" || tableName == "" {
			fmt.Fprintf(os.Stderr, "Error: --base and --table are required when listing records\n")
			os.Exit(1)
		}

		if err := listRecords(baseID, tableName); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Output help message
	fmt.Println("Usage:")
	pflag.PrintDefaults()
}

// listRecords prints matching records one JSON document per line, walking
// the pages the way a real API consumer would.
func listRecords(baseID, tableName string) error {
	client := airtablemock.New(baseID, "")
	opts := airtablemock.ListOptions{
		FilterByFormula: pflag.Lookup("filter").Value.String(),
		View:            pflag.Lookup("view").Value.String(),
	}

	for {
		page, err := client.List(tableName, opts)
		if err != nil {
			return err
		}
		for _, record := range page.Records {
			line, err := json.Marshal(record)
			if err != nil {
				return err
			}
			fmt.Println(string(line))
		}
		if page.Offset == 0 {
			return nil
		}
		opts.Offset = page.Offset
	}
}
