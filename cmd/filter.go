package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fundboard/internal/adapter/memory"
	"fundboard/internal/adapter/usecase"
	"fundboard/internal/config"
	"fundboard/internal/core/domain"
	"fundboard/internal/preset"
)

// filterFlags are shared by the offline commands.
type filterFlags struct {
	seed       int64
	countries  []string
	categories []string
	from       string
	to         string
	filterFile string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "dataset seed (default DATASET_SEED)")
	cmd.Flags().StringSliceVar(&f.countries, "country", nil, "countries to include (default all)")
	cmd.Flags().StringSliceVar(&f.categories, "category", nil, "categories to include (default all)")
	cmd.Flags().StringVar(&f.from, "from", "", "first creation date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.to, "to", "", "last creation date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.filterFile, "filter-file", "", "YAML filter preset; flags override its values")
}

// spec merges the preset file (if any) with explicitly set flags.
func (f *filterFlags) spec(cmd *cobra.Command) (domain.FilterSpec, error) {
	spec := domain.FilterSpec{
		Countries:  append([]domain.Country(nil), domain.Countries...),
		Categories: append([]domain.Category(nil), domain.Categories...),
	}
	if f.filterFile != "" {
		var err error
		if spec, err = preset.Load(f.filterFile); err != nil {
			return spec, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("country") {
		spec.Countries = []domain.Country{}
		for _, c := range f.countries {
			spec.Countries = append(spec.Countries, domain.Country(c))
		}
	}
	if flags.Changed("category") {
		spec.Categories = []domain.Category{}
		for _, c := range f.categories {
			spec.Categories = append(spec.Categories, domain.Category(c))
		}
	}
	if flags.Changed("from") {
		t, err := time.Parse(domain.DateLayout, f.from)
		if err != nil {
			return spec, fmt.Errorf("invalid --from: %w", err)
		}
		spec.From = t
	}
	if flags.Changed("to") {
		t, err := time.Parse(domain.DateLayout, f.to)
		if err != nil {
			return spec, fmt.Errorf("invalid --to: %w", err)
		}
		spec.To = t
	}
	return spec, nil
}

// offlineUseCase builds a use case with a single default session generated
// from the configured window and the --seed flag (or DATASET_SEED).
func (f *filterFlags) offlineUseCase(ctx context.Context, cmd *cobra.Command) (*usecase.DashboardUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	opts := useCaseOptions(cfg)
	if cmd.Flags().Changed("seed") {
		opts.Seed = f.seed
	}
	svc := usecase.NewDashboardUseCase(memory.NewSessionRepository(), opts)
	if err = svc.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
