package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/komekomeaaa/tarot/internal/app"
)

var questionsCmd = &cobra.Command{
	Use:       "questions [binary|likert]",
	Short:     "Print a sigil question bank as JSON",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{app.ModeBinary, app.ModeLikert},
	RunE: func(_ *cobra.Command, args []string) error {
		mode := app.ModeBinary
		if len(args) == 1 {
			mode = args[0]
		}
		q, err := app.NewReadingService(nil, nil, nil, nil, nil, nil).Questions(mode)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}
