package tui

// Color constants for the therapylog TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field values, titles
	ColorSecondaryText = "#B1B8C7" // Labels
	ColorDisabledText  = "#6D7383" // Unset values
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Section headers, focused borders
	ColorAccentBright = "#A78BFA" // Focused field, clock

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Informational pop-ups
)
