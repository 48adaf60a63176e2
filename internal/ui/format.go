// Package ui holds presentation helpers shared by the CLI and TUI.
package ui

import (
	"fmt"
	"math"
	"strconv"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with the largest unit keeping the
// value in [1, 1024), one decimal place with a trailing ".0" trimmed.
// Zero renders as "0 B" exactly.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp > len(sizeUnits)-1 {
		exp = len(sizeUnits) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(exp))*10) / 10
	// Rounding can push the value to the next unit boundary.
	if value >= 1024 && exp < len(sizeUnits)-1 {
		exp++
		value = math.Round(float64(bytes)/math.Pow(1024, float64(exp))*10) / 10
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[exp]
}
