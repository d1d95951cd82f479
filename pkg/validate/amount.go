package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotANumber = errors.New("not a number")

// ParseAmount reads a JSON number or a numeric JSON string.
// present is false when the value is absent or null.
func ParseAmount(raw json.RawMessage) (amount decimal.Decimal, present bool, err error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, false, nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal([]byte(s), &str); err != nil {
			return decimal.Zero, true, fmt.Errorf("%w: %s", ErrNotANumber, s)
		}
		s = strings.TrimSpace(str)
	}

	amount, err = decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return amount.Round(2), true, nil
}
