// README: CLI demo; runs the extraction pipeline on a raw model response and prints the result.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"wander/internal/ai"
	"wander/internal/extract"
	"wander/internal/trip"
)

func main() {
	debug := flag.Bool("debug", false, "print raw text and candidate alongside the parsed plan")
	flag.Parse()

	raw, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	result, err := extract.Extract(raw)
	if err != nil {
		var failure *extract.Failure
		if errors.As(err, &failure) {
			fmt.Fprintf(os.Stderr, "extraction failed: %s (%v)\n", failure.Reason, failure)
			if *debug {
				fmt.Fprintf(os.Stderr, "--- raw ---\n%s\n", failure.Raw)
			}
			os.Exit(1)
		}
		log.Fatal(err)
	}

	result.Plan.Route = trip.ComputeRoute(result.Plan.VisitSequence)

	if *debug {
		fmt.Fprintf(os.Stderr, "--- candidate ---\n%s\n", result.Candidate)
		for _, d := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "diagnostic: %s\n", d)
		}
	}

	out, err := json.MarshalIndent(result.Plan, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

// readInput loads the raw blob from a file argument, stdin, or the bundled sample.
func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(b), nil
	}
	return ai.SampleRawResponse, nil
}
