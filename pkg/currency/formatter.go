package currency

import "github.com/dustin/go-humanize"

// FormatRUB renders amount with a space as thousands separator, a comma
// as decimal separator and two decimals, e.g. "12 950,50 ₽".
func FormatRUB(amount float64) string {
	return humanize.FormatFloat("# ###,##", amount) + " ₽"
}
