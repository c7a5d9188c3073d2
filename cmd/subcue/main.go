// Command subcue is a command-line host for the word-timed subtitle editing
// engine. It operates on JSON document snapshots: repairing timing
// invariants, searching and replacing across the transcript, censoring
// words, and reporting document statistics.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
