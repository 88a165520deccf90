package cli

import (
	"fmt"
	"io"
	"shopping-path-service/internal/domain"
	"strings"

	"github.com/fatih/color"
)

var (
	corridorColor = color.New(color.FgGreen, color.Bold)
	categoryColor = color.New(color.FgYellow)
	missingColor  = color.New(color.FgRed)
)

// formatPath renders a path for a terminal. A non-empty list is printed
// first as a numbered header.
func formatPath(path *domain.OptimizedPath, list []string) string {
	var b strings.Builder

	if len(list) > 0 {
		b.WriteString(headingColor.Sprint("Random Shopping List:"))
		b.WriteString("\n----------------------\n")
		for i, item := range list {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	if len(path.Corridors) > 0 {
		b.WriteString(headingColor.Sprint("Your optimized shopping path:"))
		b.WriteString("\n--------------------------------\n")

		for _, c := range path.Corridors {
			fmt.Fprintf(&b, "\n%s (%s)\n", corridorColor.Sprint(c.Name), c.Direction())

			current := ""
			for i, item := range c.Items {
				if i == 0 || item.Category != current {
					current = item.Category
					fmt.Fprintf(&b, "  %s:\n", categoryColor.Sprint(current))
				}
				fmt.Fprintf(&b, "    └─ %s (%s)\n", item.Name, item.Location.Describe())
			}
		}
	}

	if len(path.NotFound) > 0 {
		b.WriteString("\n")
		b.WriteString(missingColor.Sprint("Items not found in store:"))
		b.WriteString("\n")
		for _, item := range path.NotFound {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
	}

	return b.String()
}

func printPath(w io.Writer, path *domain.OptimizedPath, list []string) error {
	_, err := io.WriteString(w, formatPath(path, list))
	return err
}
