// internal/pkg/currency/currency.go
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vi = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount the way the storefront displays prices,
// grouped per vi-VN conventions with a trailing currency sign.
func FormatVND(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return fmt.Sprintf("%s ₫", vi.Sprintf("%d", amount.IntPart()))
	}
	f, _ := amount.Float64()
	return fmt.Sprintf("%s ₫", vi.Sprintf("%.2f", f))
}
