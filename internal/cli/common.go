package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"shopping-path-service/internal/adapters/repositories"
	"shopping-path-service/internal/config"
	"shopping-path-service/internal/services"
)

// newOptimizer loads the layout and profile selected by flags or environment.
func newOptimizer(ctx context.Context) (*services.Optimizer, error) {
	path := layoutPath
	if path == "" {
		path = config.Get("LAYOUT_PATH", "data/merged_articles.json")
	}
	ppath := profilePath
	if ppath == "" {
		ppath = config.Get("PROFILE_PATH", "")
	}

	profile, err := config.LoadProfile(ppath)
	if err != nil {
		return nil, err
	}

	entries, err := repositories.NewFileLayoutRepository(path, profile).ListProductLocations(ctx)
	if err != nil {
		return nil, err
	}

	opt, err := services.NewOptimizer(entries, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to build optimizer from %s: %w", path, err)
	}
	return opt, nil
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
