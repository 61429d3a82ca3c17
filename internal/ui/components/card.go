package components

import (
	"charm.land/lipgloss/v2"

	"zenstudy/internal/ui/theme"
)

// CardWidth returns the uniform inner width used for flashcard faces so
// question and answer sides visually align.
func CardWidth(frameWidth int) int {
	// Leave room for the border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// FlashcardFace renders one side of a flashcard, centered within the
// given dimensions. The answer side gets the accent border.
func FlashcardFace(content string, flipped bool, width, height int) string {
	border := theme.Border
	if flipped {
		border = theme.Accent
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(CardWidth(width) - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

// PanelCard wraps content in a rounded-border card at the given width.
func PanelCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
