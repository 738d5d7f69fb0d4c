package asset

import (
	"strings"

	"shiba-faucet/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSymbol = errs.New("invalid asset symbol")
	ErrInvalidAmount = errs.New("invalid claim amount")
)

const (
	minSymbolLength = 2
	maxSymbolLength = 12
)

// Symbol is the unique asset key, case-insensitive on input and
// upper-cased before any lookup.
type Symbol struct {
	value string
}

func NewSymbol(s string) (Symbol, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if len(t) < minSymbolLength || len(t) > maxSymbolLength {
		return Symbol{}, ErrInvalidSymbol
	}
	for _, c := range t {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return Symbol{}, ErrInvalidSymbol
		}
	}
	return Symbol{value: t}, nil
}

func (s Symbol) String() string { return s.value }

func (s Symbol) IsZero() bool { return s.value == "" }

// Amount is an exact fixed-point quantity. Floats never enter the
// claim path; parsing rejects anything decimal cannot represent
// exactly and anything non-positive.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, errs.Mark(err, ErrInvalidAmount)
	}
	if !d.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) String() string { return a.value.String() }
