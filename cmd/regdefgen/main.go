// Package main provides the CLI entrypoint for regdefgen.
//
// regdefgen compiles YAML register definitions into C++ accessor headers:
//   - Validates document structure and reports path-qualified errors
//   - Normalizes the bit, range and enum field encodings
//   - Emits GenericRegister/GenericField types with SET/CLEAR and enum helpers
//   - Writes each header to the path declared by its document
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
