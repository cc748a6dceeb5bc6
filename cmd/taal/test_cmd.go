package main

import (
	"fmt"
	"io"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a model",
		Long:  `Test the performance of a model against a set of labelled sentences`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := rootConfig.v
			if err := required(v, "model"); err != nil {
				return err
			}
			e, err := rootConfig.extractor()
			if err != nil {
				return err
			}
			ctx := rootConfig.Context()
			m, err := rootConfig.loadModel(ctx, v.GetString("model"))
			if err != nil {
				return err
			}
			testingSet, err := rootConfig.labelledSet(ctx, v.GetString("input"), cmd.InOrStdin(), e, 0)
			if err != nil {
				return fmt.Errorf("reading testing set: %v", err)
			}
			rootConfig.Logf("Testing model against testing set with %d samples...", testingSet.Count())
			report, err := model.Evaluate(ctx, m, testingSet)
			if err != nil {
				return fmt.Errorf("testing model: %v", err)
			}
			if report.Err != nil {
				rootConfig.Logf("%v", report.Err)
			}
			rootConfig.Logf("Done")
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringP("model", "m", "", "path to a file or redis://host:port/db?key=name location from which the model to test will be read (required)")
	cmd.Flags().StringP("input", "i", "", "path to a file with labelled sentences, a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB URL with samples to test against (defaults to STDIN, interpreted as labelled sentences)")
	return cmd
}

func renderReport(w io.Writer, r *model.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("CONFUSION")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Actual", AlignHeader: text.AlignCenter},
		{Name: "Predicted " + feature.Dutch.String(), Align: text.AlignRight},
		{Name: "Predicted " + feature.English.String(), Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"Actual", "Predicted " + feature.Dutch.String(), "Predicted " + feature.English.String()})
	for _, actual := range []feature.Outcome{feature.Dutch, feature.English} {
		t.AppendRow(table.Row{actual, r.Count(actual, feature.Dutch), r.Count(actual, feature.English)})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"Accuracy", fmt.Sprintf("%d/%d", r.Correct, r.Total), fmt.Sprintf("%.2f%%", 100*r.Accuracy())})
	t.Render()
	fmt.Fprintf(w, "%f success rate, failed to make a prediction for %d samples\n", r.Accuracy(), r.Failed)
}
