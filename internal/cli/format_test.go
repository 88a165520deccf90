package cli

import (
	"shopping-path-service/internal/domain"
	"testing"

	"github.com/fatih/color"
)

func TestFormatPathEmpty(t *testing.T) {
	color.NoColor = true

	out := formatPath(&domain.OptimizedPath{NotFound: []string{}}, nil)
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestFormatPathGroupsCategories(t *testing.T) {
	color.NoColor = true

	loc := domain.Location{Corridor: "Gang 3", Side: domain.SideSouth, End: domain.EndWest}
	path := &domain.OptimizedPath{
		Corridors: []domain.CorridorPath{{
			Name:  "Gang 3",
			Entry: domain.EndWest,
			Exit:  domain.EndEast,
			Items: []domain.ShoppingItem{
				{Name: "Penne", Category: "Nudeln", Location: loc},
				{Name: "Spaghetti", Category: "Nudeln", Location: loc},
				{Name: "Reis", Category: "Reis", Location: loc},
			},
		}},
	}

	want := "Random Shopping List:\n" +
		"----------------------\n" +
		"1. Penne\n" +
		"\n" +
		"Your optimized shopping path:\n" +
		"--------------------------------\n" +
		"\n" +
		"Gang 3 (West → East)\n" +
		"  Nudeln:\n" +
		"    └─ Penne (Left side)\n" +
		"    └─ Spaghetti (Left side)\n" +
		"  Reis:\n" +
		"    └─ Reis (Left side)\n"

	if got := formatPath(path, []string{"Penne"}); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
