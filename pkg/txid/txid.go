// Package txid generates topup transaction ids: "TU", a UTC yymmddHHMMSS stamp,
// six random digits and a Luhn check digit.
package txid

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	Prefix      = "TU"
	stampLayout = "060102150405"
)

func New() string {
	return NewAt(time.Now())
}

func NewAt(t time.Time) string {
	body := t.UTC().Format(stampLayout) + fmt.Sprintf("%06d", rand.IntN(1_000_000))
	_, withCheck, err := goluhn.Calculate(body)
	if err != nil {
		// body is always numeric
		return Prefix + body
	}
	return Prefix + withCheck
}

// Normalize trims and upper-cases an id so lookups ignore case.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// IsGenerated reports whether id has the shape produced by New.
func IsGenerated(id string) bool {
	id = Normalize(id)
	if !strings.HasPrefix(id, Prefix) {
		return false
	}
	return goluhn.Validate(strings.TrimPrefix(id, Prefix)) == nil
}
