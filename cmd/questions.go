package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/abhisek/happymeter/internal/config"
	"github.com/abhisek/happymeter/internal/corpus"
	"github.com/abhisek/happymeter/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the configured questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		qs, err := corpus.Load(cfg.QuestionsFile)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		printQuestions(cmd.OutOrStdout(), qs)
		return nil
	},
}

func printQuestions(w io.Writer, qs *corpus.Corpus) {
	for _, q := range qs.Questions() {
		fmt.Fprintf(w, "%2d. %s\n", q.Index+1, q.Text)
	}
	fmt.Fprintf(w, "\n%d questions, %d asked per quiz\n", qs.Len(), min(qs.Len(), quiz.QuestionsPerSession))

	fmt.Fprintln(w, "\nResult bands:")
	for _, c := range quiz.Categories() {
		if math.IsInf(c.Min, -1) {
			fmt.Fprintf(w, "  %s below the bands above  %s\n", c.Emoji, c.Name)
			continue
		}
		fmt.Fprintf(w, "  %s %.1f and up  %s\n", c.Emoji, c.Min, c.Name)
	}
}
