package components

import (
	"github.com/Rorical/ChairFinder/ui/styles"
)

const inputPlaceholder = "Describe the user, e.g. 3-year-old, 15kg, narrow seat"

func RenderInput(input string, width int) string {
	inputStyle := styles.InputStyle(width)
	if input == "" {
		return inputStyle.Render(styles.PlaceholderStyle().Render(inputPlaceholder))
	}
	return inputStyle.Render(input)
}
