package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	featureyaml "github.com/anuragkanade/LanguageDetectionEnglishDutch/feature/yaml"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/sentence"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	v          *viper.Viper
	log        *zap.Logger
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New(), log: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:          "taal",
		Short:        "taal tells Dutch sentences from English ones",
		Long:         `A tool to train decision trees and AdaBoost ensembles that tell Dutch sentences from English ones, test them, and use them to make predictions`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.close()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress and debugging information on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML file with default values for any flag")
	rootCmd.PersistentFlags().StringP("features", "f", "", "path to a YML file with the definitions of the features to extract from sentences (defaults to the built-in ones)")
	rootCmd.AddCommand(
		versionCmd(),
		trainCmd(config),
		predictCmd(config),
		testCmd(config),
		extractCmd(config),
		showCmd(config),
	)
	return rootCmd
}

/*
setup binds the flags of the command being run into viper, along with
TAAL_ prefixed environment variables and the config file if given,
and sets up logging.
*/
func (rcc *rootCmdConfig) setup(cmd *cobra.Command) error {
	rcc.v.SetEnvPrefix("TAAL")
	rcc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rcc.v.AutomaticEnv()
	if err := rcc.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if rcc.configFile != "" {
		rcc.v.SetConfigFile(rcc.configFile)
		if err := rcc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %v", rcc.configFile, err)
		}
	}
	log, err := newLogger(rcc.v.GetBool("verbose"))
	if err != nil {
		return err
	}
	rcc.log = log
	return nil
}

func (rcc *rootCmdConfig) close() {
	rcc.log.Sync()
	if rcc.cancelFunc != nil {
		rcc.cancelFunc()
	}
}

// Context returns a context cancelled on interrupt
func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
	return rcc.ctx
}

func (rcc *rootCmdConfig) extractor() (*sentence.Extractor, error) {
	path := rcc.v.GetString("features")
	if path == "" {
		return sentence.DefaultExtractor(), nil
	}
	rcc.Logf("Reading feature definitions from %s...", path)
	return featureyaml.ReadExtractorFromFile(path)
}

func required(v *viper.Viper, flags ...string) error {
	for _, f := range flags {
		if v.GetString(f) == "" {
			return fmt.Errorf("required %s flag was not set", f)
		}
	}
	return nil
}
