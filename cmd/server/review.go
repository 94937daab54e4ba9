package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"bookscan/internal/agent"
	"bookscan/internal/model"

	"github.com/spf13/cobra"
)

var errReviewFailed = errors.New("review generation failed")

var reviewCmd = &cobra.Command{
	Use:   "review <title...>",
	Short: "Generate a review for a book title and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return errors.New("please enter a book name")
		}

		reviewer, err := agent.NewReviewerFromConfig(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize reviewer: %w", err)
		}

		return printReview(cmd.OutOrStdout(), reviewer.Review(cmd.Context(), title))
	},
}

// printReview writes a result in plain text and reports generation failures as an error
func printReview(w io.Writer, res model.ReviewResult) error {
	fmt.Fprintf(w, "Title:    %s\n", res.BookTitle)
	fmt.Fprintf(w, "Category: %s\n\n", res.Category)
	fmt.Fprintln(w, res.ReviewText)

	if !res.Succeeded {
		return fmt.Errorf("%w (%s)", errReviewFailed, res.FailureCode)
	}
	return nil
}
