// internal/session/state_test.go
package session

import (
	"bytes"
	"testing"

	"github.com/dairyking98/network-okidata/internal/model"
)

func testDefaults() model.SessionSettings {
	return model.SessionSettings{
		CPI:             "10 cpi",
		Font:            "Block Graphic Set",
		Spacing:         "1/6",
		SpacingN:        9,
		Quality:         "HSD/SSD",
		Speed:           "Full",
		Zero:            "Slashed Zero",
		SkipPerforation: 0,
		LeftMarginTabs:  0,
		RightMarginIn:   7.5,
		Mode:            model.ModeLineByLine,
	}
}

func TestTogglePairs(t *testing.T) {
	cases := []struct {
		feature model.Feature
		on      []byte
		off     []byte
	}{
		{model.FeatureItalic, []byte{0x1B, 0x21, 0x2F}, []byte{0x1B, 0x21, 0x2A}},
		{model.FeatureEmphasized, []byte{0x1B, 0x54}, []byte{0x1B, 0x49}},
		{model.FeatureUnderline, []byte{0x1B, 0x2D, 0x01}, []byte{0x1B, 0x2D, 0x00}},
		{model.FeatureUnidirectional, []byte{0x1B, 0x2D, 0x02}, []byte{0x1B, 0x2D, 0x00}},
		{model.FeatureEnhanced, []byte{0x1B, 0x48}, []byte{0x1B, 0x49}},
		{model.FeatureDoubleHeight, []byte{0x1B, 0x1F, 0x31}, []byte{0x1B, 0x1F, 0x30}},
		{model.FeatureProportional, []byte{0x1B, 0x59}, []byte{0x1B, 0x5A}},
		{model.FeatureShift, []byte{0x0F}, []byte{0x0E}},
	}

	for _, tc := range cases {
		state := NewState(testDefaults())

		out, err := state.SetToggle(tc.feature, true)
		if err != nil {
			t.Fatalf("%s on: %v", tc.feature, err)
		}
		if !bytes.Equal(out.Payload, tc.on) {
			t.Errorf("%s on: got % X, want % X", tc.feature, out.Payload, tc.on)
		}

		out, err = state.SetToggle(tc.feature, false)
		if err != nil {
			t.Fatalf("%s off: %v", tc.feature, err)
		}
		if !bytes.Equal(out.Payload, tc.off) {
			t.Errorf("%s off: got % X, want % X", tc.feature, out.Payload, tc.off)
		}
	}
}

func TestToggleIdempotentResend(t *testing.T) {
	state := NewState(testDefaults())

	first, err := state.SetToggle(model.FeatureItalic, true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := state.SetToggle(model.FeatureItalic, true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Payload, second.Payload) {
		t.Errorf("repeated enable changed payload: % X vs % X", first.Payload, second.Payload)
	}
}

func TestDoubleWideToggle(t *testing.T) {
	state := NewState(testDefaults())

	out, err := state.SetToggle(model.FeatureDoubleWide, true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1F}) {
		t.Errorf("double-wide on: got % X, want 1F", out.Payload)
	}

	// Disabling re-issues the selected CPI command, not a dedicated off code.
	if _, err := state.SelectCPI("12 cpi"); err != nil {
		t.Fatal(err)
	}
	out, err = state.SetToggle(model.FeatureDoubleWide, false)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1C}) {
		t.Errorf("double-wide off: got % X, want 1C (12 cpi)", out.Payload)
	}
	if out.Tag != "[CPI]" {
		t.Errorf("double-wide off tag: got %q, want [CPI]", out.Tag)
	}
}

func TestUnknownFeature(t *testing.T) {
	state := NewState(testDefaults())
	if _, err := state.SetToggle(model.Feature("BLINKING"), true); err == nil {
		t.Error("expected error for unknown feature")
	}
}

func TestSettingSelectors(t *testing.T) {
	state := NewState(testDefaults())

	out, err := state.SelectCPI("17.1 cpi")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1D}) {
		t.Errorf("cpi: got % X, want 1D", out.Payload)
	}

	out, err = state.SelectFont("Publisher Set")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1B, 0x21, 0x5A}) {
		t.Errorf("font: got % X", out.Payload)
	}

	out, err = state.SelectSpacing("n/144", 7)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1B, 0x25, 0x39, 0x07}) {
		t.Errorf("spacing: got % X", out.Payload)
	}

	out, err = state.SelectQuality("NLQ Gothic")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1B, 0x33}) {
		t.Errorf("quality: got % X", out.Payload)
	}

	out, err = state.SelectSpeed("Half")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1B, 0x3C}) {
		t.Errorf("speed: got % X", out.Payload)
	}

	out, err = state.SelectZero("Unslashed Zero")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1B, 0x21, 0x41}) {
		t.Errorf("zero: got % X", out.Payload)
	}

	out, err = state.SetSkipPerforation(5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Payload, []byte{0x1B, 0x47, 0x05, 0x05}) {
		t.Errorf("skip: got % X", out.Payload)
	}
}

func TestSettingValidation(t *testing.T) {
	state := NewState(testDefaults())

	if _, err := state.SelectCPI("11 cpi"); err == nil {
		t.Error("expected error for invalid cpi")
	}
	if _, err := state.SelectFont("Comic Sans"); err == nil {
		t.Error("expected error for invalid font")
	}
	if _, err := state.SelectSpacing("1/7", 0); err == nil {
		t.Error("expected error for invalid spacing")
	}
	if _, err := state.SelectSpacing("n/144", 12); err == nil {
		t.Error("expected error for out-of-range spacing n")
	}
	if _, err := state.SetSkipPerforation(10); err == nil {
		t.Error("expected error for out-of-range skip")
	}
	if err := state.SetLeftMargin(21); err == nil {
		t.Error("expected error for out-of-range left margin")
	}
	if err := state.SetMode(model.Mode("BATCH")); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestDefaultsPlan(t *testing.T) {
	state := NewState(testDefaults())
	if _, err := state.SelectCPI("12 cpi"); err != nil {
		t.Fatal(err)
	}
	if _, err := state.SetSkipPerforation(3); err != nil {
		t.Fatal(err)
	}
	if _, err := state.SetToggle(model.FeatureDoubleHeight, true); err != nil {
		t.Fatal(err)
	}

	plan := state.DefaultsPlan()
	if len(plan) != 7 {
		t.Fatalf("plan length: got %d, want 7", len(plan))
	}

	// Reset, current CPI and skip are concatenated into one buffer.
	wantRestore := []byte{0x18, 0x1C, 0x1B, 0x47, 0x03, 0x03}
	if !bytes.Equal(plan[0].Payload, wantRestore) {
		t.Errorf("restore buffer: got % X, want % X", plan[0].Payload, wantRestore)
	}
	if plan[0].Tag != "[Restore Defaults]" {
		t.Errorf("restore tag: got %q", plan[0].Tag)
	}

	wantTags := []string{
		"[Restore Defaults]", "[Character Set]", "[Spacing]",
		"[Quality]", "[Speed]", "[Double Height]", "[Proportional]",
	}
	for i, tag := range wantTags {
		if plan[i].Tag != tag {
			t.Errorf("plan[%d] tag: got %q, want %q", i, plan[i].Tag, tag)
		}
	}

	// Double height was enabled, so the plan re-sends the on command.
	if !bytes.Equal(plan[5].Payload, []byte{0x1B, 0x1F, 0x31}) {
		t.Errorf("double height: got % X, want ESC US 1", plan[5].Payload)
	}

	// Building the plan does not alter stored toggles.
	snap := state.Snapshot()
	if !snap.Toggles[model.FeatureDoubleHeight] {
		t.Error("defaults plan mutated toggle state")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	state := NewState(testDefaults())
	snap := state.Snapshot()
	snap.Toggles[model.FeatureItalic] = true

	if state.Snapshot().Toggles[model.FeatureItalic] {
		t.Error("snapshot shares toggle map with state")
	}
}

func TestLineLengthUsesState(t *testing.T) {
	state := NewState(testDefaults())
	if err := state.SetLeftMargin(2); err != nil {
		t.Fatal(err)
	}
	if _, err := state.SetToggle(model.FeatureDoubleWide, true); err != nil {
		t.Fatal(err)
	}

	// 2 tabs at 10 cpi = 1.6 in, 10 chars at effective 5 cpi = 2.0 in.
	got := state.LineLength(10)
	if got.Display != "3.60" {
		t.Errorf("line length: got %q, want 3.60", got.Display)
	}
}
