package theme

// Theme defines all colors used by the demo with semantic naming.
var (
	// Brand colors
	AccentColor = "#9d87ae" // purple for the title row and active elements

	// Text colors
	TextPrimary     = "#ffffff" // 255 - white text for set names
	TextDescription = "#c9c9c9" // 250 - light gray for descriptions and help text
	TextMuted       = "#7a7a7a" // 240 - dark gray for status details

	// Throbber colors
	ThrobberRunning = "#8be9fd" // 86 - cyan glyphs while animating
	ThrobberPaused  = "#ffb86c" // 214 - orange glyphs while paused
	DefaultThrobber = "#f1fa8c" // 220 - yellow for the random-step title throbber

	// Status colors
	ErrorStatus = "#ff5555" // 196 - red for errors

	// UI colors
	SeparatorColor = "#4a4a4a" // 238 - very dark gray for separators
)
