package main

import (
	"math"
	"strconv"
)

// Convert win probability to rounded money-line odds
func probToMoneyline(p float64) int {
	if p <= 0 || p >= 1 {
		return 0
	}
	if p >= 0.5 {
		raw := -p / (1 - p) * 100
		return int(math.Round(raw/10)) * 10
	}
	raw := (1 - p) / p * 100
	if raw < 200 {
		return int(math.Ceil(raw/10)) * 10
	}
	return int(math.Ceil(raw/25)) * 25
}

func formatMoneyline(ml int) string {
	switch {
	case ml == 0:
		return "-"
	case ml > 0:
		return "+" + strconv.Itoa(ml)
	default:
		return strconv.Itoa(ml)
	}
}
