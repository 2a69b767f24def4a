package main

import (
	"context"
	"fmt"
	"os"

	"nutrition-assistant/config"
	"nutrition-assistant/internal/catalog"
	catalogRepo "nutrition-assistant/internal/catalog/repository"
	"nutrition-assistant/pkg/log"
)

// Queries every configured catalog provider with a few fixed terms and prints what comes back.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/smoke-catalog/main.go <path/to/config.yaml> [term...]")
		fmt.Println("Example: go run scripts/smoke-catalog/main.go config/config.yaml \"coca cola\" yogurt")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	terms := os.Args[2:]
	if len(terms) == 0 {
		terms = []string{"coca cola", "chocolate", "yogurt"}
	}

	for _, name := range cfg.Catalog.Providers {
		repo, err := catalogRepo.NewProvider(name, cfg, logger)
		if err != nil {
			logger.Warnf(ctx, "%s: %v", name, err)
			if repo == nil {
				continue
			}
		}

		for _, term := range terms {
			out, err := repo.Search(ctx, catalog.SearchOptions{Query: term, PageSize: 5})
			fmt.Printf("provider=%s query=%q products=%d status=%d\n", name, term, len(out.Records), catalog.StatusOf(err))
			if err != nil {
				fmt.Printf("last_error=%v\n", err)
			}
			for i, r := range out.Records {
				if i == 2 {
					break
				}
				fmt.Printf("- %s | nutriscore=%s | kcal_100g=%s | sugar_100g=%s | protein_100g=%s\n",
					r.Name, r.Nutriscore, fmtNum(r.Kcal), fmtNum(r.Sugar), fmtNum(r.Protein))
			}
			fmt.Println("---")
		}
	}
}

func fmtNum(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *v)
}
