package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"brandwatch/internal/app"
	"brandwatch/internal/config"
	"brandwatch/internal/domain"
	"brandwatch/internal/logging"
	"brandwatch/internal/report"
	"brandwatch/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	maxResults := flag.Int("max", usecase.DefaultResults, "articles to fetch per source (5-30)")
	modelFilter := flag.String("model", usecase.FilterAll, "filter by detected model")
	toneFilter := flag.String("tone", usecase.FilterAll, "filter by tone (Positive, Neutral, Negative)")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	application := app.New(cfg, logger)

	filters := usecase.Filters{Model: *modelFilter, Tone: *toneFilter}
	result, err := application.Pipeline().Scan(context.Background(), cfg.Query, *maxResults, filters)
	if err != nil {
		if errors.Is(err, domain.ErrNoArticles) {
			fmt.Println("Aucun article trouvé.")
			return
		}
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	report.WriteTable(os.Stdout, result.Articles)
	fmt.Println()
	fmt.Println(report.FormatBuzz(result.Buzz))
}
