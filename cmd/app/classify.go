package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"degreedecider/internal/models/request_models"
	"degreedecider/internal/services"
)

func newClassifyCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the degree recommended for an answer set",
		Long:  "Reads an answer set as JSON from --file or stdin and prints the recommendation as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return classify(in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "answer set JSON file (default stdin)")
	return cmd
}

func classify(in io.Reader, out io.Writer) error {
	var answers request_models.AnswerSet
	if err := json.NewDecoder(in).Decode(&answers); err != nil {
		return fmt.Errorf("decode answers: %w", err)
	}
	degree, err := services.NewRecommendationService(nil).Recommend(answers)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(degree)
}
