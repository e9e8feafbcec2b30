package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/shrawansher/Hillary-or-Trump/bayes"
	"github.com/shrawansher/Hillary-or-Trump/corpus"
	"github.com/shrawansher/Hillary-or-Trump/store"
)

var (
	evalTweets string
	evalLabels string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the model against a labeled test set",
	Long: `Evaluate loads the stored model, classifies every document in the
given test files, and prints the confusion matrix and accuracy.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evalTweets, "tweets", "t", "", "test tweet file, one per line")
	evaluateCmd.Flags().StringVarP(&evalLabels, "labels", "l", "", "test label file, one per line")
	evaluateCmd.MarkFlagRequired("tweets")
	evaluateCmd.MarkFlagRequired("labels")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	docs, err := corpus.Load(evalTweets, evalLabels, cfg.Data.LabelNames)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	classifier, err := st.LoadModel(modelOptions()...)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(docs)), "evaluating")
	matrix := bayes.NewConfusionMatrix()
	for _, doc := range docs {
		predicted, err := classifier.Predict(doc.Text)
		if err != nil {
			return err
		}
		matrix.Add(predicted, doc.Class)
		bar.Add(1)
	}

	labels := matrix.Labels()
	fmt.Println("\nConfusion matrix (rows predicted, columns actual):")
	fmt.Printf("%-12s", "")
	for _, actual := range labels {
		fmt.Printf("%12s", actual)
	}
	fmt.Println()
	for _, predicted := range labels {
		fmt.Printf("%-12s", predicted)
		for _, actual := range labels {
			fmt.Printf("%12d", matrix.Count(predicted, actual))
		}
		fmt.Println()
	}
	fmt.Printf("\nAccuracy: %.4f over %d documents\n", matrix.Accuracy(), matrix.Total())
	return nil
}
