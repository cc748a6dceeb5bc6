package main

import (
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model"
	"github.com/spf13/cobra"
)

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a model",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(rootConfig.v, "model"); err != nil {
				return err
			}
			format := rootConfig.v.GetString("format")
			if format != "tree" && format != "mapping" {
				return fmt.Errorf("unknown format %q, expected tree or mapping", format)
			}
			m, err := rootConfig.loadModel(rootConfig.Context(), rootConfig.v.GetString("model"))
			if err != nil {
				return err
			}
			out := m.String()
			if format == "mapping" && m.Kind == model.DecisionTree && m.Tree != nil {
				out, err = m.Tree.Mapping(rootConfig.Context())
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s model\n%s", m.Kind, out)
			return nil
		},
	}
	cmd.Flags().StringP("model", "m", "", "path to a file or redis://host:port/db?key=name location from which the model will be read (required)")
	cmd.Flags().String("format", "tree", "how decision trees are printed: tree or mapping from each split feature to its branches")
	return cmd
}
