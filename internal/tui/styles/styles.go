package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Navy       = lipgloss.Color("#0D253F")
	SkyBlue    = lipgloss.Color("#01B4E4")
	Mint       = lipgloss.Color("#90CEA1")
	Gold       = lipgloss.Color("#F5C518")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	PageTitleStyle = lipgloss.NewStyle().
			Foreground(Mint).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(SkyBlue)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Gold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(Navy).
			Background(Mint).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Width(12)
)

// Card styles for the movie grid
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SkyBlue).
				Padding(0, 1)
)

// Pagination styles
var (
	PageStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	CurrentPageStyle = lipgloss.NewStyle().
				Foreground(Navy).
				Background(SkyBlue).
				Bold(true).
				Padding(0, 1)

	DisabledPageStyle = lipgloss.NewStyle().
				Foreground(SlateLight).
				Padding(0, 1)
)

// Panel styles
var (
	SliderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Mint).
			Padding(0, 2)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SkyBlue).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight)

	ActiveItemStyle = lipgloss.NewStyle().
			Foreground(SkyBlue)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(SkyBlue).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(White)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(SkyBlue)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(SkyBlue)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Pad pads a string with spaces to the given display width
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// WordWrap wraps text to the specified width
func WordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLen := 0

	for i, word := range strings.Fields(text) {
		wordLen := lipgloss.Width(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
