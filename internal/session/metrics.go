// internal/session/metrics.go
package session

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dairyking98/network-okidata/internal/model"
)

const (
	fallbackCPI         = 10.0
	fallbackRightMargin = 7.5
	tabWidthChars       = 8.0
)

// ParseCPI extracts the numeric pitch from a CPI setting such as
// "17.1 cpi". Unparsable values fall back to 10.0 rather than failing,
// since the projection must stay total.
func ParseCPI(value string) float64 {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return fallbackCPI
	}
	cpi, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fallbackCPI
	}
	return cpi
}

// ComputeLineLength projects the printed length of a line and classifies
// it against the right margin. A zero or NaN pitch is substituted with
// 10 cpi, a bad right margin with 7.5 inches; the function never fails.
func ComputeLineLength(charCount, leftMarginTabs int, numericCPI float64, doubleWide bool, rightMarginIn float64) model.LineLength {
	if numericCPI == 0 || math.IsNaN(numericCPI) {
		numericCPI = fallbackCPI
	}
	if charCount < 0 {
		charCount = 0
	}
	if leftMarginTabs < 0 {
		leftMarginTabs = 0
	}

	effectiveCPI := numericCPI
	if doubleWide {
		effectiveCPI = numericCPI / 2.0
	}

	length := (tabWidthChars*float64(leftMarginTabs))/numericCPI + float64(charCount)/effectiveCPI

	if math.IsNaN(rightMarginIn) {
		rightMarginIn = fallbackRightMargin
	}

	gap := rightMarginIn - length
	feasibility := model.FeasibilityOver
	switch {
	case gap >= 0.5:
		feasibility = model.FeasibilityOK
	case gap >= 0:
		feasibility = model.FeasibilityWarn
	}

	return model.LineLength{
		Inches:      length,
		Display:     decimal.NewFromFloat(length).StringFixed(2),
		Feasibility: feasibility,
	}
}
