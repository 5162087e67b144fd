// internal/session/state.go
package session

import (
	"fmt"
	"sync"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/pkg/okidata"
)

// Outbound is a tagged byte buffer ready for transmission.
type Outbound struct {
	Tag     string
	Payload []byte
}

// togglePair maps a feature to its on and off command names.
type togglePair struct {
	on  string
	off string
	tag string
}

// Emphasized and enhanced share the same off sequence on the device but
// stay independent toggles because their enable paths differ.
var togglePairs = map[model.Feature]togglePair{
	model.FeatureItalic:         {"Italic Printing On", "Italic Printing Off", "[Italic]"},
	model.FeatureEmphasized:     {"Emphasized Printing On", "Emphasized Printing Off", "[Emphasized]"},
	model.FeatureUnderline:      {"Underline Printing On", "Underline Printing Off", "[Underline Printing]"},
	model.FeatureUnidirectional: {"Unidirectional Printing On", "Unidirectional Printing Off", "[Unidirectional Printing]"},
	model.FeatureEnhanced:       {"Enhanced Printing On", "Enhanced Printing Off", "[Enhanced Printing]"},
	model.FeatureDoubleHeight:   {"Double Height On", "Double Height Off", "[Double Height]"},
	model.FeatureProportional:   {"Proportional Printing On", "Proportional Printing Off", "[Proportional]"},
}

var validCPI = map[string]bool{
	"10 cpi":   true,
	"12 cpi":   true,
	"15 cpi":   true,
	"17.1 cpi": true,
	"20 cpi":   true,
}

var validFonts = map[string]bool{
	"Standard Character Set": true,
	"Block Graphic Set":      true,
	"Publisher Set":          true,
	"Line Graphics Set":      true,
}

var qualityCommands = map[string]string{
	"HSD/SSD":     "Print Quality Select HSD/SSD",
	"NLQ Courier": "Select NLQ Courier",
	"NLQ Gothic":  "Select NLQ Gothic",
	"Utility":     "Select Utility",
}

var speedCommands = map[string]string{
	"Full": "Print Speed Set to Full",
	"Half": "Print Speed Set to Half",
}

// State holds the persistent printer session: the nine formatting
// toggles plus the selected pitch, font, spacing, quality, speed, zero
// style, perforation skip and margins. All mutation goes through its
// methods; HTTP handlers run concurrently so access is mutex-guarded.
type State struct {
	mu       sync.RWMutex
	toggles  map[model.Feature]bool
	settings model.SessionSettings
}

// NewState creates a session state seeded with the given defaults.
func NewState(defaults model.SessionSettings) *State {
	toggles := make(map[model.Feature]bool, len(model.Features))
	for _, f := range model.Features {
		toggles[f] = false
	}
	return &State{
		toggles:  toggles,
		settings: defaults,
	}
}

// SetToggle stores the new value and returns the command to transmit.
// Setting the same value twice re-sends the same command: the device is
// told once per change request, not once per state change. Disabling
// double-wide re-issues the currently selected CPI command because the
// device has no dedicated narrow-mode code at this encoding.
func (s *State) SetToggle(feature model.Feature, enabled bool) (Outbound, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch feature {
	case model.FeatureDoubleWide:
		s.toggles[feature] = enabled
		if enabled {
			return Outbound{Tag: "[Double Wide ON]", Payload: okidata.Lookup("Double Width On").Encode()}, nil
		}
		return s.cpiOutboundLocked(), nil

	case model.FeatureShift:
		s.toggles[feature] = enabled
		if enabled {
			return Outbound{Tag: "[Shift In]", Payload: okidata.Lookup("Shift In").Encode()}, nil
		}
		return Outbound{Tag: "[Shift Out]", Payload: okidata.Lookup("Shift Out").Encode()}, nil

	default:
		pair, ok := togglePairs[feature]
		if !ok {
			return Outbound{}, fmt.Errorf("unknown toggle feature: %s", feature)
		}
		s.toggles[feature] = enabled
		name := pair.off
		if enabled {
			name = pair.on
		}
		return Outbound{Tag: pair.tag, Payload: okidata.Lookup(name).Encode()}, nil
	}
}

// SelectCPI selects the character pitch and returns its command.
func (s *State) SelectCPI(value string) (Outbound, error) {
	if !validCPI[value] {
		return Outbound{}, fmt.Errorf("invalid cpi value: %q", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.CPI = value
	return s.cpiOutboundLocked(), nil
}

// cpiOutboundLocked encodes the currently selected CPI command.
func (s *State) cpiOutboundLocked() Outbound {
	return Outbound{
		Tag:     "[CPI]",
		Payload: okidata.Lookup("Select " + s.settings.CPI).Encode(),
	}
}

// SelectFont selects the character set and returns its command.
func (s *State) SelectFont(value string) (Outbound, error) {
	if !validFonts[value] {
		return Outbound{}, fmt.Errorf("invalid character set: %q", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Font = value
	return Outbound{Tag: "[Character Set]", Payload: okidata.Lookup(value).Encode()}, nil
}

// SelectSpacing selects line spacing. The n parameter is only used for
// the "n/144" mode and must be in 0-9.
func (s *State) SelectSpacing(value string, n int) (Outbound, error) {
	var payload []byte
	switch value {
	case "1/6":
		payload = okidata.Lookup("Set Spacing to 1/6\"").Encode()
	case "1/8":
		payload = okidata.Lookup("Set Spacing to 1/8\"").Encode()
	case "n/144":
		if n < 0 || n > 9 {
			return Outbound{}, fmt.Errorf("spacing n out of range: %d", n)
		}
		payload = okidata.Lookup("Set Spacing to n/144").EncodeParam(n)
	default:
		return Outbound{}, fmt.Errorf("invalid spacing value: %q", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Spacing = value
	if value == "n/144" {
		s.settings.SpacingN = n
	}
	return Outbound{Tag: "[Spacing]", Payload: payload}, nil
}

// SelectQuality selects the print quality and returns its command.
func (s *State) SelectQuality(value string) (Outbound, error) {
	name, ok := qualityCommands[value]
	if !ok {
		return Outbound{}, fmt.Errorf("invalid print quality: %q", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Quality = value
	return Outbound{Tag: "[Quality]", Payload: okidata.Lookup(name).Encode()}, nil
}

// SelectSpeed selects the print speed and returns its command.
func (s *State) SelectSpeed(value string) (Outbound, error) {
	name, ok := speedCommands[value]
	if !ok {
		return Outbound{}, fmt.Errorf("invalid print speed: %q", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Speed = value
	return Outbound{Tag: "[Speed]", Payload: okidata.Lookup(name).Encode()}, nil
}

// SelectZero selects slashed or unslashed zero and returns its command.
func (s *State) SelectZero(value string) (Outbound, error) {
	if value != "Slashed Zero" && value != "Unslashed Zero" {
		return Outbound{}, fmt.Errorf("invalid zero style: %q", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Zero = value
	return Outbound{Tag: "[" + value + "]", Payload: okidata.Lookup(value).Encode()}, nil
}

// SetSkipPerforation sets the perforation skip count (0 disables).
func (s *State) SetSkipPerforation(n int) (Outbound, error) {
	if n < 0 || n > 9 {
		return Outbound{}, fmt.Errorf("skip perforation out of range: %d", n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SkipPerforation = n
	return Outbound{
		Tag:     "[Skip Over Perforation]",
		Payload: okidata.Lookup("Skip Over Perforation").EncodeParam(n),
	}, nil
}

// SetLeftMargin sets the left margin tab count. No command is sent; the
// margin is applied as a tab burst on each line commit.
func (s *State) SetLeftMargin(n int) error {
	if n < 0 || n > 20 {
		return fmt.Errorf("left margin out of range: %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.LeftMarginTabs = n
	return nil
}

// SetRightMargin sets the right margin in inches used for feasibility.
func (s *State) SetRightMargin(inches float64) error {
	if inches < 0 {
		return fmt.Errorf("right margin must not be negative: %v", inches)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.RightMarginIn = inches
	return nil
}

// SetMode switches between live and line-by-line emission.
func (s *State) SetMode(mode model.Mode) error {
	if mode != model.ModeLive && mode != model.ModeLineByLine {
		return fmt.Errorf("invalid mode: %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Mode = mode
	return nil
}

// Mode returns the current emission mode.
func (s *State) Mode() model.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Mode
}

// LeftMargin returns the current left margin tab count.
func (s *State) LeftMargin() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.LeftMarginTabs
}

// LineLength projects the printed length of a line with the given
// character count under the current pitch, double-wide and margins.
func (s *State) LineLength(charCount int) model.LineLength {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeLineLength(
		charCount,
		s.settings.LeftMarginTabs,
		ParseCPI(s.settings.CPI),
		s.toggles[model.FeatureDoubleWide],
		s.settings.RightMarginIn,
	)
}

// DefaultsPlan builds the restore-defaults transmissions from the
// currently stored settings. Stored toggle values are not altered. The
// first buffer concatenates buffer reset, CPI and perforation skip;
// font, spacing, quality, speed, double height and proportional follow
// as individual transmissions, in that order.
func (s *State) DefaultsPlan() []Outbound {
	s.mu.RLock()
	defer s.mu.RUnlock()

	restore := okidata.Lookup("Reset (Clear Print Buffer)").Encode()
	restore = append(restore, okidata.Lookup("Select "+s.settings.CPI).Encode()...)
	restore = append(restore, okidata.Lookup("Skip Over Perforation").EncodeParam(s.settings.SkipPerforation)...)

	var spacing []byte
	switch s.settings.Spacing {
	case "1/8":
		spacing = okidata.Lookup("Set Spacing to 1/8\"").Encode()
	case "n/144":
		spacing = okidata.Lookup("Set Spacing to n/144").EncodeParam(s.settings.SpacingN)
	default:
		spacing = okidata.Lookup("Set Spacing to 1/6\"").Encode()
	}

	doubleHeight := "Double Height Off"
	if s.toggles[model.FeatureDoubleHeight] {
		doubleHeight = "Double Height On"
	}
	proportional := "Proportional Printing Off"
	if s.toggles[model.FeatureProportional] {
		proportional = "Proportional Printing On"
	}

	return []Outbound{
		{Tag: "[Restore Defaults]", Payload: restore},
		{Tag: "[Character Set]", Payload: okidata.Lookup(s.settings.Font).Encode()},
		{Tag: "[Spacing]", Payload: spacing},
		{Tag: "[Quality]", Payload: okidata.Lookup(qualityCommands[s.settings.Quality]).Encode()},
		{Tag: "[Speed]", Payload: okidata.Lookup(speedCommands[s.settings.Speed]).Encode()},
		{Tag: "[Double Height]", Payload: okidata.Lookup(doubleHeight).Encode()},
		{Tag: "[Proportional]", Payload: okidata.Lookup(proportional).Encode()},
	}
}

// Snapshot returns a copy of the full session state.
func (s *State) Snapshot() model.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	toggles := make(map[model.Feature]bool, len(s.toggles))
	for f, v := range s.toggles {
		toggles[f] = v
	}
	return model.SessionSnapshot{
		Settings: s.settings,
		Toggles:  toggles,
	}
}
