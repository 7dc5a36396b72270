package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/ChairFinder/internal/models"
	"github.com/Rorical/ChairFinder/ui/styles"
)

// chromeHeight is the number of lines used by everything except results:
// quick bar, input box (3), notice, status bar and the results header
const chromeHeight = 8

// ResultsViewportHeight is how many result lines fit on screen
func ResultsViewportHeight(height int) int {
	if height <= 0 {
		return 20
	}
	if h := height - chromeHeight; h > 3 {
		return h
	}
	return 3
}

// ResultsLines returns the rendered results split into lines
func ResultsLines(cards []models.Card, width int) []string {
	if len(cards) == 0 {
		return []string{styles.NoImageStyle().Render("No recommendations to show.")}
	}
	return strings.Split(RenderCards(cards, width), "\n")
}

// MaxScroll is the largest useful scroll offset
func MaxScroll(cards []models.Card, width, height int) int {
	n := len(ResultsLines(cards, width)) - ResultsViewportHeight(height)
	if n < 0 {
		return 0
	}
	return n
}

// RenderResults renders the visible window of the results area. Nothing is
// shown until the area has been revealed.
func RenderResults(cards []models.Card, visible bool, offset, width, height int) string {
	if !visible {
		return ""
	}

	lines := ResultsLines(cards, width)
	if limit := MaxScroll(cards, width, height); offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + ResultsViewportHeight(height)
	if end > len(lines) {
		end = len(lines)
	}

	header := styles.HeaderStyle().Render(fmt.Sprintf("Recommendations (%d)", len(cards)))
	return header + "\n" + strings.Join(lines[offset:end], "\n") + "\n"
}
