package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func extractCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract feature samples from labelled sentences",
		Long:  `Extract the features of a file of labelled sentences and store the resulting samples as CSV, on an SQLite3 file, or on a PostgreSQL or MongoDB database`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := rootConfig.v
			e, err := rootConfig.extractor()
			if err != nil {
				return err
			}
			ctx := rootConfig.Context()
			s, err := rootConfig.labelledSet(ctx, v.GetString("input"), cmd.InOrStdin(), e, 0)
			if err != nil {
				return fmt.Errorf("reading labelled sentences: %v", err)
			}
			n, err := rootConfig.dumpSet(ctx, v.GetString("output"), cmd.OutOrStdout(), s)
			if err != nil {
				return fmt.Errorf("writing samples: %v", err)
			}
			rootConfig.Logf("Wrote %d samples", n)
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "path to a file with labelled sentences (defaults to STDIN)")
	cmd.Flags().StringP("output", "o", "", "path to a CSV or SQLite3 (.db) file, or a PostgreSQL or MongoDB URL to write the samples to (defaults to STDOUT, as CSV)")
	return cmd
}
