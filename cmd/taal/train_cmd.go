package main

import (
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/boost"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/tree"
	"github.com/spf13/cobra"
)

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model from labelled sentences",
		Long:  `Train a decision tree (dt) or an AdaBoost ensemble of stumps (ada) that tells Dutch sentences from English ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := rootConfig.v
			if err := required(v, "output"); err != nil {
				return err
			}
			kind, err := model.ParseKind(v.GetString("algorithm"))
			if err != nil {
				return err
			}
			e, err := rootConfig.extractor()
			if err != nil {
				return err
			}
			ctx := rootConfig.Context()
			trainingSet, err := rootConfig.labelledSet(ctx, v.GetString("input"), cmd.InOrStdin(), e, v.GetInt("max-db-conns"))
			if err != nil {
				return fmt.Errorf("reading training set: %v", err)
			}
			cfg := model.Config{
				Tree: tree.Config{
					MaxDepth:         v.GetInt("max-depth"),
					ResolveExhausted: v.GetBool("resolve-exhausted"),
					Logger:           rootConfig.log,
				},
				Boost: boost.Config{
					StumpCap: v.GetInt("stump-cap"),
					Logger:   rootConfig.log,
				},
			}
			rootConfig.Logf("Training %s model from a set with %d samples and %d features...", kind, trainingSet.Count(), trainingSet.Width())
			m, err := model.Train(ctx, kind, trainingSet, cfg)
			if err != nil {
				return err
			}
			rootConfig.Logf("Done")
			rootConfig.Logf("%v", m)
			return rootConfig.saveModel(ctx, v.GetString("output"), m)
		},
	}
	cmd.Flags().StringP("input", "i", "", "path to a file with labelled sentences (nl|... or en|... per line), a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB URL with samples to train on (defaults to STDIN, interpreted as labelled sentences)")
	cmd.Flags().StringP("output", "o", "", "path to a file or redis://host:port/db?key=name location to which the model will be written in JSON format (required)")
	cmd.Flags().StringP("algorithm", "a", string(model.DecisionTree), "learner to train the model with: dt or ada")
	cmd.Flags().Int("max-depth", 0, "maximum number of splits from the root of a decision tree (defaults to 0: no limit)")
	cmd.Flags().Bool("resolve-exhausted", true, "end branches no feature can split with a leaf for their majority outcome instead of leaving them without prediction")
	cmd.Flags().Int("stump-cap", boost.DefaultStumpCap, "cap on the number of features taken for an AdaBoost ensemble, which gets one stump less than the cap")
	cmd.Flags().Int("max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}
