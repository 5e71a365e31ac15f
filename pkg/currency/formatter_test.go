package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRUB(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{name: "zero", amount: 0, expect: "0,00 ₽"},
		{name: "below thousand", amount: 950, expect: "950,00 ₽"},
		{name: "thousands", amount: 12950, expect: "12 950,00 ₽"},
		{name: "millions with cents", amount: 1234567.5, expect: "1 234 567,50 ₽"},
		{name: "negative", amount: -200, expect: "-200,00 ₽"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, FormatRUB(tc.amount))
		})
	}
}
