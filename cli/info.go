package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/shrawansher/Hillary-or-Trump/store"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the stored model's training state",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	classifier, err := st.LoadModel(modelOptions()...)
	if err != nil {
		return err
	}

	fmt.Printf("Documents:  %d\n", classifier.TotalDocuments())
	fmt.Printf("Vocabulary: %d distinct tokens\n", classifier.VocabularySize())
	fmt.Printf("Smoothing:  %.2f\n", classifier.Smoothing())
	fmt.Println("Classes:")
	for _, class := range classifier.Classes() {
		fmt.Printf("  %-10s %6d documents  prior %.4f\n",
			class, classifier.DocumentCount(class), math.Exp(classifier.LogPrior(class)))
	}
	return nil
}
