package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/komekomeaaa/tarot/internal/adapters/decks"
	"github.com/komekomeaaa/tarot/internal/adapters/memory"
	"github.com/komekomeaaa/tarot/internal/app"
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/reading"
)

var readFlags struct {
	spread    string
	category  string
	goal      string
	situation string
	question  string
	deadline  string
	sigil     string
	urgency   int
	seed      uint64
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Draw a spread and print the reading as JSON",
	RunE:  runRead,
}

func init() {
	f := readCmd.Flags()
	f.StringVar(&readFlags.spread, "spread", string(domain.SpreadThreeCard), "one_card, three_card or celtic_cross")
	f.StringVar(&readFlags.category, "category", string(domain.CategoryLove), "love, work, money, health, relationship or family")
	f.StringVar(&readFlags.goal, "goal", "", "what you want to happen")
	f.StringVar(&readFlags.situation, "situation", "", "where things stand")
	f.StringVar(&readFlags.question, "question", "", "the question you are asking")
	f.StringVar(&readFlags.deadline, "deadline", string(domain.DeadlineWeek), "today, week, month or longer")
	f.StringVar(&readFlags.sigil, "sigil", "", "four letter sigil code")
	f.IntVar(&readFlags.urgency, "urgency", 0, "1-5")
	f.Uint64Var(&readFlags.seed, "seed", 0, "seed for a reproducible draw (0 = random)")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	rng := domain.NewGlobalRNG()
	if readFlags.seed != 0 {
		rng = domain.NewSeededRNG(readFlags.seed)
	}

	store := decks.NewEmbeddedStore()
	catalog, err := store.Catalog(cmd.Context())
	if err != nil {
		return err
	}
	composer := reading.NewComposer(catalog, rng, reading.WithLimits(cfg.Limits))
	svc := app.NewReadingService(store, composer, memory.NewSessionStore(time.Hour), nil, rng, logger)

	resp, err := svc.ReadSpread(cmd.Context(), app.ReadSpreadRequest{
		Spread: domain.SpreadType(readFlags.spread),
		User: domain.UserContext{
			Category:  domain.Category(readFlags.category),
			Situation: readFlags.situation,
			Goal:      readFlags.goal,
			Deadline:  domain.Deadline(readFlags.deadline),
			SigilCode: readFlags.sigil,
			Question:  readFlags.question,
			Urgency:   readFlags.urgency,
		},
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Draw    domain.DrawResult `json:"draw"`
		Reading domain.Reading    `json:"reading"`
	}{resp.Draw, resp.Reading})
}
