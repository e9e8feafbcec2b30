// Package cli implements the command-line surface of the authorship
// classifier.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
	"github.com/shrawansher/Hillary-or-Trump/config"
	"github.com/shrawansher/Hillary-or-Trump/tokenizer"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hillaryortrump",
	Short: "Classify tweet authorship with a Naive Bayes model",
	Long: `hillaryortrump trains a Naive Bayes model on labeled tweets and
predicts which of the known authors wrote a new one.

Example usage:
  hillaryortrump train                       # Train on the configured corpus
  hillaryortrump predict "Make America..."   # Classify one tweet
  hillaryortrump evaluate -t test.txt -l test_labels.txt
  hillaryortrump info                        # Inspect the trained model`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadOrDefault(cfgFile)
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file")
}

// tokenizeFunc builds the tokenizer the configuration asks for. Training
// and prediction must use the same one or token identities drift.
func tokenizeFunc() func(string) []string {
	return tokenizer.New(cfg.Tokenizer.Stemming).Tokenize
}

func modelOptions() []bayes.Option {
	opts := []bayes.Option{
		bayes.WithSmoothing(cfg.Model.Smoothing),
		bayes.WithTokenizer(tokenizeFunc()),
	}
	if len(cfg.Model.Classes) > 0 {
		opts = append(opts, bayes.WithClasses(cfg.Model.Classes...))
	}
	return opts
}
