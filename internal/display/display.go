// Package display maps scores, priority tiers, and neighborhood grades
// to presentation colors and labels. The score banding here is a
// deliberately separate table from the scoring thresholds in the scorer
// package; the two look similar but are independently specified.
package display

import "github.com/patrik-drean/dealflow-cli/internal/model"

// Band is the presentation triple for one score bucket.
type Band struct {
	Label     string
	Color     string
	TextColor string
}

var unknownBand = Band{Label: "Unknown", Color: "#9E9E9E", TextColor: "#FFFFFF"}

// ScoreBand returns the presentation band for a 0-10 deal score. Total
// over all integers: out-of-range and unscored inputs get the Unknown
// band.
func ScoreBand(score int) Band {
	switch {
	case score > 10:
		return unknownBand
	case score >= 9:
		return Band{Label: "Amazing", Color: "#4CAF50", TextColor: "#FFFFFF"}
	case score >= 7:
		return Band{Label: "Great", Color: "#8BC34A", TextColor: "#212121"}
	case score >= 5:
		return Band{Label: "Good", Color: "#FFC107", TextColor: "#212121"}
	case score >= 3:
		return Band{Label: "Fair", Color: "#FF9800", TextColor: "#212121"}
	case score >= 1:
		return Band{Label: "Poor", Color: "#F44336", TextColor: "#FFFFFF"}
	default:
		return unknownBand
	}
}

// priorityColors covers all four tiers; anything else falls back to gray.
var priorityColors = map[model.Priority]string{
	model.PriorityUrgent: "#D32F2F",
	model.PriorityHigh:   "#F57C00",
	model.PriorityMedium: "#FBC02D",
	model.PriorityNormal: "#757575",
}

// PriorityColor returns the display color for a priority tier.
func PriorityColor(p model.Priority) string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return unknownBand.Color
}

// gradeColors covers the five neighborhood grades A-F.
var gradeColors = map[string]string{
	"A": "#4CAF50",
	"B": "#8BC34A",
	"C": "#FFC107",
	"D": "#FF9800",
	"F": "#F44336",
}

// GradeColor returns the display color for a neighborhood grade.
func GradeColor(grade string) string {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return unknownBand.Color
}
