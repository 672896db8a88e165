package tui

// renderNight blanks the whole screen.
func renderNight(width, height int) string {
	return nightStyle.Width(width).Height(height).Render("")
}
