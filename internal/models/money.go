package models

import "fmt"

// Cents is a fixed-point money amount in hundredths of a dollar.
// Monetary arithmetic stays in integers so bills never pick up
// floating-point drift.
type Cents int64

// String renders the amount as a plain decimal, e.g. "450.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
