package format

import (
	"math"
	"strconv"
	"strings"
)

// Accent colours shared by result and accuracy styling.
const (
	ColorGood    = "#059669"
	ColorMiddle  = "#d97706"
	ColorBad     = "#dc2626"
	ColorNeutral = "#64748b"
)

// Number formats v without trailing zeros ("4", "62.5"). Non-finite values render as "0".
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatScore joins a score pair as "a-b". Missing input yields "".
func FormatScore(pair []float64) string {
	if len(pair) == 0 {
		return ""
	}
	parts := make([]string, len(pair))
	for i, v := range pair {
		parts[i] = Number(v)
	}
	return strings.Join(parts, "-")
}

// Percent renders a 0-100 value as "87%".
func Percent(v float64) string {
	return Number(v) + "%"
}

// WinProbabilityPercent renders a 0-1 probability as a rounded percentage.
func WinProbabilityPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(p*100))) + "%"
}

// BarWidth clamps a 0-100 value for use as a CSS width percentage.
func BarWidth(v float64) string {
	switch {
	case math.IsNaN(v) || v < 0:
		v = 0
	case v > 100:
		v = 100
	}
	return Percent(v)
}

// AccuracyColor picks the accent for an accuracy figure.
func AccuracyColor(accuracy float64) string {
	switch {
	case accuracy >= 80:
		return ColorGood
	case accuracy >= 70:
		return ColorMiddle
	default:
		return ColorBad
	}
}

// ResultColor is the card accent for a graded prediction.
func ResultColor(correct bool) string {
	if correct {
		return ColorGood
	}
	return ColorBad
}

// ResultLabel is the badge text for a graded prediction.
func ResultLabel(correct bool) string {
	if correct {
		return "Correct"
	}
	return "Incorrect"
}

// PointsLabel is the scoring note for a graded prediction.
func PointsLabel(correct bool) string {
	if correct {
		return "+1 Point"
	}
	return "0 Points"
}
