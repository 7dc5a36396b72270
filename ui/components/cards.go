package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/ChairFinder/internal/models"
	"github.com/Rorical/ChairFinder/ui/styles"
)

const NoImageMarker = "[no image]"

// FormatNumber prints measurements without trailing zeros (8.2, 26)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderCard renders one recommendation
func RenderCard(card models.Card, width int) string {
	field := styles.FieldStyle()

	lines := []string{
		styles.CardTitleStyle().Render(card.Name),
		field.Render("Manufacturer: " + card.Manufacturer),
		field.Render("Weight: " + FormatNumber(card.Weight) + "kg"),
		field.Render("Seat width: " + FormatNumber(card.SeatWidth) + "cm"),
	}

	cardStyle := styles.CardStyle(width)
	if card.NoImage {
		lines = append(lines, styles.NoImageStyle().Render(NoImageMarker))
		cardStyle = styles.NoImageCardStyle(width)
	} else {
		lines = append(lines, styles.ImageStyle().Render(card.ImageURL))
	}

	if len(card.Keywords) > 0 {
		tags := make([]string, len(card.Keywords))
		for i, kw := range card.Keywords {
			tags[i] = styles.TagStyle().Render(kw)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderCards renders every card in order
func RenderCards(cards []models.Card, width int) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = RenderCard(card, width)
	}
	return strings.Join(rendered, "\n")
}
