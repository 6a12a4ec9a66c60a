package money

import (
	"strconv"
	"strings"
)

// Cents is a currency amount in integer minor units (CAD cents).
// All pricing arithmetic happens on this type; conversion to a display
// string is the only place an amount is rendered as dollars.
type Cents int64

// Mul scales a per-unit amount by an order quantity.
func (c Cents) Mul(quantity int) Cents {
	return c * Cents(quantity)
}

// Format renders an amount as a string like "$1,234.56".
// Uses comma as the thousands separator.
func (c Cents) Format() string {
	neg := c < 0
	if neg {
		c = -c
	}

	dollars := strconv.FormatInt(int64(c)/100, 10)
	cents := int64(c) % 100

	var b strings.Builder
	// Pre-allocate: digits + separators + "$" + ".00"
	b.Grow(len(dollars) + len(dollars)/3 + 5)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(dollars) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(dollars[:rem])
	for i := rem; i < len(dollars); i += 3 {
		b.WriteByte(',')
		b.WriteString(dollars[i : i+3])
	}

	b.WriteByte('.')
	if cents < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(cents, 10))

	return b.String()
}
