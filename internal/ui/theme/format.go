package theme

import "fmt"

func signed(v float64) string {
	return fmt.Sprintf("%+.1f pts", v)
}

// Percent formats a 0-100 percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%5.1f%%", v)
}
