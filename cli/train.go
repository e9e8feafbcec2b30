package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
	"github.com/shrawansher/Hillary-or-Trump/corpus"
	"github.com/shrawansher/Hillary-or-Trump/store"
)

var (
	trainTweets string
	trainLabels string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the model on a labeled tweet corpus",
	Long: `Train reads the paired tweet and label files, fits the Naive Bayes
model, and stores it so predict and evaluate can reuse it without
retraining.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVarP(&trainTweets, "tweets", "t", "", "tweet file, one per line (default from config)")
	trainCmd.Flags().StringVarP(&trainLabels, "labels", "l", "", "label file, one per line (default from config)")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	tweetsPath := cfg.Data.Tweets
	if trainTweets != "" {
		tweetsPath = trainTweets
	}
	labelsPath := cfg.Data.Labels
	if trainLabels != "" {
		labelsPath = trainLabels
	}

	docs, err := corpus.Load(tweetsPath, labelsPath, cfg.Data.LabelNames)
	if err != nil {
		return err
	}

	classifier := bayes.NewClassifier(modelOptions()...)
	if err := classifier.Fit(docs); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveModel(classifier); err != nil {
		return fmt.Errorf("store model: %w", err)
	}

	fmt.Printf("Trained on %d documents (%d distinct tokens).\n",
		classifier.TotalDocuments(), classifier.VocabularySize())
	for _, class := range classifier.Classes() {
		fmt.Printf("  %-10s %d documents\n", class, classifier.DocumentCount(class))
	}
	fmt.Printf("Model stored in %s.\n", cfg.Store.Path)
	return nil
}
