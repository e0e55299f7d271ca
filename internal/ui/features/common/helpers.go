// Package common provides shared helpers for UI features.
package common

import "strconv"

// Itoa converts an integer to a string for use in templ attributes.
func Itoa(n int) string {
	return strconv.Itoa(n)
}

// Ftoa converts a float to a compact string for use in SVG attributes.
func Ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
