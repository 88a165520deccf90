package repositories

import (
	"context"
	"fmt"
	"os"
	"shopping-path-service/internal/domain"
)

// FileLayoutRepository reads product locations straight from the layout artifact.
type FileLayoutRepository struct {
	Path    string
	Profile domain.StoreProfile
}

func NewFileLayoutRepository(path string, profile domain.StoreProfile) *FileLayoutRepository {
	return &FileLayoutRepository{Path: path, Profile: profile}
}

// Return every product location of the artifact in document order.
func (f *FileLayoutRepository) ListProductLocations(ctx context.Context) ([]domain.ProductLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layout, err := LoadLayoutFile(f.Path, f.Profile.SpecialCorridor)
	if err != nil {
		return nil, fmt.Errorf("list product locations: %w", err)
	}

	return layout.Flatten(f.Profile), nil
}

// LoadLayoutFile opens and parses a layout artifact.
func LoadLayoutFile(path string, specialCorridor string) (*domain.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: open %q: %w", path, err)
	}
	defer f.Close()

	layout, err := ParseLayout(f, specialCorridor)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", path, err)
	}

	return layout, nil
}
