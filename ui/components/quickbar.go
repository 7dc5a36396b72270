package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/ChairFinder/internal/models"
	"github.com/Rorical/ChairFinder/ui/styles"
)

func RenderQuickBar() string {
	parts := make([]string, len(models.QuickTypes))
	for i, q := range models.QuickTypes {
		parts[i] = styles.QuickKeyStyle().Render(fmt.Sprintf("F%d", i+1)) + " " + q.Label()
	}
	return styles.QuickBarStyle().Render(strings.Join(parts, "  ") + "  ·  Ctrl+E example  ·  Ctrl+C quit")
}
