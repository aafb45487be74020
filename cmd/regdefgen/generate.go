package main

import (
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"regdefgen/internal/pipeline"
)

var (
	strict    bool
	keepGoing bool
	jobs      int
	dumpModel bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate base-directory input-document...",
	Short: "Generate register accessor headers",
	Long: `Generate compiles every input document and writes the header named by its
"output" key. Output paths are resolved inside base-directory, which is
created as needed.

The run stops at the first failing document and exits non-zero; nothing is
written for the failing document. --keep-going attempts every document and
reports all failures instead.`,

	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		opts := []pipeline.Option{
			pipeline.WithLogger(logger),
			pipeline.WithStrict(strict),
		}

		if dumpModel {
			opts = append(opts, pipeline.WithModelDump(cmd.ErrOrStderr()))
		}

		p := pipeline.New(osfs.New(args[0]), opts...)

		return p.CompileAll(cmd.Context(), args[1:], jobs, keepGoing)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&strict, "strict", false, "treat overlapping, out-of-range and duplicate definitions as errors")
	generateCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue with the next document after a failure")
	generateCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of documents compiled concurrently")
	generateCmd.Flags().BoolVar(&dumpModel, "dump-model", false, "dump the built model of every document to stderr")

	rootCmd.AddCommand(generateCmd)
}
