// internal/model/printer.go
package model

// Mode represents the keystroke emission mode
type Mode string

const (
	// ModeLive sends every qualifying keystroke the instant it occurs.
	ModeLive Mode = "LIVE"
	// ModeLineByLine buffers keystrokes and transmits whole lines on commit.
	ModeLineByLine Mode = "LINE_BY_LINE"
)

// Feature represents a persistent formatting toggle
type Feature string

const (
	FeatureItalic         Feature = "ITALIC"
	FeatureEmphasized     Feature = "EMPHASIZED"
	FeatureUnderline      Feature = "UNDERLINE"
	FeatureUnidirectional Feature = "UNIDIRECTIONAL"
	FeatureEnhanced       Feature = "ENHANCED"
	FeatureDoubleHeight   Feature = "DOUBLE_HEIGHT"
	FeatureProportional   Feature = "PROPORTIONAL"
	FeatureDoubleWide     Feature = "DOUBLE_WIDE"
	FeatureShift          Feature = "SHIFT"
)

// Features lists every toggle feature
var Features = []Feature{
	FeatureItalic,
	FeatureEmphasized,
	FeatureUnderline,
	FeatureUnidirectional,
	FeatureEnhanced,
	FeatureDoubleHeight,
	FeatureProportional,
	FeatureDoubleWide,
	FeatureShift,
}

// Feasibility classifies margin headroom for a composed line
type Feasibility string

const (
	FeasibilityOK   Feasibility = "OK"
	FeasibilityWarn Feasibility = "WARN"
	FeasibilityOver Feasibility = "OVER"
)

// LineLength is the projected printed length of the current line
type LineLength struct {
	Inches      float64     `json:"inches"`
	Display     string      `json:"display"`
	Feasibility Feasibility `json:"feasibility"`
}

// SequencePhase represents the progress of a line commit sequence
type SequencePhase string

const (
	PhaseIdle       SequencePhase = "IDLE"
	PhaseSentCR     SequencePhase = "SENT_CR"
	PhaseSentLF     SequencePhase = "SENT_LF"
	PhaseSentMargin SequencePhase = "SENT_MARGIN"
	PhaseSentText   SequencePhase = "SENT_TEXT"
)

// SessionSettings holds the non-toggle printer settings
type SessionSettings struct {
	CPI             string  `json:"cpi"`
	Font            string  `json:"font"`
	Spacing         string  `json:"spacing"`
	SpacingN        int     `json:"spacing_n"`
	Quality         string  `json:"quality"`
	Speed           string  `json:"speed"`
	Zero            string  `json:"zero"`
	SkipPerforation int     `json:"skip_perforation"`
	LeftMarginTabs  int     `json:"left_margin_tabs"`
	RightMarginIn   float64 `json:"right_margin_inches"`
	Mode            Mode    `json:"mode"`
}

// SessionSnapshot is a point-in-time view of the printer session
type SessionSnapshot struct {
	Settings SessionSettings  `json:"settings"`
	Toggles  map[Feature]bool `json:"toggles"`
}
