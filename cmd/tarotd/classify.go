package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/komekomeaaa/tarot/internal/app"
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

var classifyFlags struct {
	answers string
	likert  string
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Resolve questionnaire answers to a sigil code",
	Example: "  tarotd classify --answers V,S,I,E,Q\n" +
		"  tarotd classify --likert V:2,S:-1,C:1",
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFlags.answers, "answers", "", "comma separated binary answer letters")
	classifyCmd.Flags().StringVar(&classifyFlags.likert, "likert", "", "comma separated LETTER:SCORE pairs, scores -2..2")
	classifyCmd.MarkFlagsMutuallyExclusive("answers", "likert")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	req := app.ClassifyRequest{Mode: app.ModeBinary}
	if classifyFlags.likert != "" {
		answers, err := parseLikert(classifyFlags.likert)
		if err != nil {
			return err
		}
		req = app.ClassifyRequest{Mode: app.ModeLikert, Likert: answers}
	} else {
		req.Binary = parseBinary(classifyFlags.answers)
	}

	svc := app.NewReadingService(nil, nil, nil, nil, nil, nil)
	res, err := svc.Classify(req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func parseBinary(s string) []sigil.BinaryAnswer {
	var out []sigil.BinaryAnswer
	for i, letter := range splitList(s) {
		out = append(out, sigil.BinaryAnswer{QuestionID: i + 1, Letter: strings.ToUpper(letter)})
	}
	return out
}

func parseLikert(s string) ([]sigil.LikertAnswer, error) {
	var out []sigil.LikertAnswer
	for i, pair := range splitList(s) {
		letter, raw, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not LETTER:SCORE", domain.ErrInvalidAnswer, pair)
		}
		score, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidAnswer, pair, err)
		}
		out = append(out, sigil.LikertAnswer{QuestionID: i + 1, Letter: strings.ToUpper(strings.TrimSpace(letter)), Score: score})
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
