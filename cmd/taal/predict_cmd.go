package main

import (
	"fmt"
	"io"
	"os"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/sentence"
	"github.com/spf13/cobra"
)

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the language of sentences",
		Long:  `Use the loaded model to predict whether each sentence, one per line, is Dutch (is_nl) or English (is_en)`,
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
			lines, err := readSentences(v.GetString("input"), cmd.InOrStdin())
			if err != nil {
				return err
			}
			samples := make([]dataset.Sample, len(lines))
			for i, l := range lines {
				samples[i] = e.Extract(l)
			}
			results, err := model.PredictAll(ctx, m, samples)
			if err != nil {
				return err
			}
			for i, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "sentence %d: %v\n", i+1, r.Err)
					fmt.Fprintln(cmd.OutOrStdout())
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.Outcome)
			}
			if err = model.Failures(results); err != nil {
				rootConfig.log.Sugar().Warnf("no prediction for some sentences: %v", err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("model", "m", "", "path to a file or redis://host:port/db?key=name location from which the model will be read (required)")
	cmd.Flags().StringP("input", "i", "", "path to a file with one sentence per line (defaults to STDIN)")
	return cmd
}

func readSentences(input string, stdin io.Reader) ([]string, error) {
	if input == "" {
		return sentence.ReadSentences(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening sentences at %s: %v", input, err)
	}
	defer f.Close()
	return sentence.ReadSentences(f)
}
