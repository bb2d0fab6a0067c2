package logic

import "math"

// Display rounding: rates and averages carry one decimal, ratios two.
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
