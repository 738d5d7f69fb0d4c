package wallet

import (
	"strings"

	"shiba-faucet/internal/pkg/errs"
)

var ErrInvalidAddress = errs.New("invalid wallet address")

const hexDigits = 40

// Address is a 0x-prefixed, 40-hex-digit wallet identifier. It is
// case-insensitive on input and lower-cased before any lookup, so the
// same wallet can never appear under two cooldown keys.
type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(t, "0x") {
		return Address{}, ErrInvalidAddress
	}
	digits := t[2:]
	if len(digits) != hexDigits {
		return Address{}, ErrInvalidAddress
	}
	for _, c := range digits {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return Address{}, ErrInvalidAddress
		}
	}
	return Address{value: t}, nil
}

func (a Address) String() string { return a.value }

func (a Address) IsZero() bool { return a.value == "" }
