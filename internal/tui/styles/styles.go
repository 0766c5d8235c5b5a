package styles

import "github.com/charmbracelet/lipgloss"

// Oxocarbon palette (base16 oxocarbon-dark)
var (
	OxocarbonBlack  = lipgloss.Color("#161616")
	OxocarbonBase00 = lipgloss.Color("#262626")
	OxocarbonBase01 = lipgloss.Color("#393939")
	OxocarbonBase02 = lipgloss.Color("#525252")
	OxocarbonBase03 = lipgloss.Color("#767676")
	OxocarbonBase04 = lipgloss.Color("#dde1e6")
	OxocarbonBase05 = lipgloss.Color("#f2f4f8")
	OxocarbonWhite  = lipgloss.Color("#ffffff")

	OxocarbonTeal   = lipgloss.Color("#3ddbd9")
	OxocarbonBlue   = lipgloss.Color("#78a9ff")
	OxocarbonPink   = lipgloss.Color("#ee5396")
	OxocarbonRed    = lipgloss.Color("#ff5252")
	OxocarbonCyan   = lipgloss.Color("#33b1ff")
	OxocarbonGreen  = lipgloss.Color("#42be65")
	OxocarbonPurple = lipgloss.Color("#be95ff")
	OxocarbonMauve  = lipgloss.Color("#d1aaff")
	OxocarbonYellow = lipgloss.Color("#f1c21b")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(OxocarbonWhite).
			Background(OxocarbonPurple).
			Padding(0, 1).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(OxocarbonMauve).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase03).
			MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase03)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(OxocarbonRed).
			Bold(true)

	// Result rows: a left rule, thick and purple when selected.
	RowStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(OxocarbonBase02).
			BorderLeft(true).
			PaddingLeft(2).
			PaddingRight(2).
			MarginLeft(2)

	RowSelectedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(OxocarbonPurple).
				BorderLeft(true).
				PaddingLeft(2).
				PaddingRight(2).
				MarginLeft(2)

	// Gallery cards.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(OxocarbonBase01).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(OxocarbonPurple).
				Padding(0, 1)

	MovieTitleStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05).
			Bold(true)

	MetadataStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase04)

	URLStyle = lipgloss.NewStyle().
			Foreground(OxocarbonCyan).
			Italic(true)

	RatingStyle = lipgloss.NewStyle().
			Foreground(OxocarbonYellow).
			Bold(true)

	NavArrowStyle = lipgloss.NewStyle().
			Foreground(OxocarbonPurple).
			Bold(true)

	NavArrowDisabledStyle = lipgloss.NewStyle().
				Foreground(OxocarbonBase02)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(OxocarbonPurple).
			Bold(true).
			Underline(true).
			MarginTop(1).
			MarginBottom(1)

	GenreBadgeStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05).
			Background(OxocarbonBase01).
			Padding(0, 1).
			MarginRight(1)

	GenreBadgeSelectedStyle = lipgloss.NewStyle().
				Foreground(OxocarbonBlack).
				Background(OxocarbonPurple).
				Padding(0, 1).
				MarginRight(1)

	GenreBadgeCursorStyle = lipgloss.NewStyle().
				Foreground(OxocarbonPurple).
				Background(OxocarbonBase01).
				Underline(true).
				Padding(0, 1).
				MarginRight(1)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(OxocarbonMauve).
			Italic(true)

	SynopsisStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase04)

	FactLabelStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase03).
			Width(14)

	FactValueStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(OxocarbonBase02).
			Padding(0, 1)

	InputBoxFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(OxocarbonPurple).
				Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(OxocarbonBase05).
			Background(OxocarbonBase01).
			Padding(0, 1)

	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(OxocarbonPurple).
			Padding(1, 2).
			Background(OxocarbonBase00).
			Foreground(OxocarbonBase05)
)

// RatingColor grades a 0-10 vote average.
func RatingColor(avg float64) lipgloss.Color {
	switch {
	case avg >= 7.5:
		return OxocarbonGreen
	case avg >= 6:
		return OxocarbonYellow
	case avg > 0:
		return OxocarbonPink
	default:
		return OxocarbonBase03
	}
}
