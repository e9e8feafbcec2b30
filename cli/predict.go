package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shrawansher/Hillary-or-Trump/store"
)

var showPosterior bool

var predictCmd = &cobra.Command{
	Use:   "predict [text]",
	Short: "Predict which author wrote a tweet",
	Long: `Predict loads the stored model and classifies the given text,
printing the predicted author and the per-author log-scores.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().BoolVarP(&showPosterior, "posterior", "p", false, "show normalized posterior probabilities")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	classifier, err := st.LoadModel(modelOptions()...)
	if err != nil {
		return err
	}

	predicted, scores, err := classifier.PredictScores(text)
	if err != nil {
		return err
	}

	fmt.Printf("Predicted author: %s\n", predicted)
	for _, class := range classifier.Classes() {
		fmt.Printf("  %-10s log-score %.4f\n", class, scores[class])
	}

	if showPosterior {
		posterior, err := classifier.Posterior(text)
		if err != nil {
			return err
		}
		for _, class := range classifier.Classes() {
			fmt.Printf("  %-10s posterior %.4f\n", class, math.Exp(posterior[class]))
		}
	}
	return nil
}
