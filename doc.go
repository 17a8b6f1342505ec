/*
Package airtablemock is an in-memory emulation of the Airtable API for tests.

Production code talks to a *Client; tests swap the real client for this one
and get the same behavior without the network: tables, records, filtering
formulas, views, pagination and the errors the real HTTP API would send.

# Storage

All data lives in one process-global registry keyed by base ID and table
name, so every client of the same base observes the same tables, exactly
like two real clients pointed at one account. Records keep their insertion
order. Clear drops everything between test cases.

# Usage

Create a client for a base and use it like the real one:

	client := airtablemock.New("appXXXXXXXXXXXXXX", "")

	created, err := client.Create("recipes", map[string]any{
	    "name":   "carbonara",
	    "rating": 5,
	})

	page, err := client.List("recipes", airtablemock.ListOptions{
	    FilterByFormula: `rating >= 4`,
	})

Filtering supports comparisons between a field and a literal with =, !=, <,
<=, > and >=, combined with the AND and OR functions; see the formula
package for the exact grammar.

# Views

A view is a named, saved formula filter. Register one with CreateView and
select it per request:

	err := client.CreateView("recipes", "well rated", `rating >= 4`)
	page, err := client.List("recipes", airtablemock.ListOptions{View: "well rated"})

As long as no view was ever created the View option is ignored with a
warning, so code under test may name views that the fixtures do not define.

# Fixtures

ExportJSON and ImportJSON snapshot the whole registry as one JSON document,
so a test can load a fixture file instead of creating records one by one.
Configure with a non-zero RandomSeed makes generated record IDs, and
therefore whole snapshots, reproducible.
*/
package airtablemock
