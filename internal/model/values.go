package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Int64 is an int64 that decodes from either a JSON number or a JSON string.
// The REST gateway renders 64-bit integers as strings.
type Int64 int64

func (i *Int64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*i = 0
			return nil
		}
		data = []byte(s)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parse int64 %q: %w", data, err)
	}
	*i = Int64(v)
	return nil
}

func (i Int64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(i), 10))
}

const nanoExp = -9

// Quotation is a decimal quantity split into integer units and billionths.
type Quotation struct {
	Units Int64 `json:"units"`
	Nano  int32 `json:"nano"`
}

// Decimal returns units + nano/10^9 exactly.
func (q Quotation) Decimal() decimal.Decimal {
	return toDecimal(q.Units, q.Nano)
}

// IsZero reports whether both parts are zero.
func (q Quotation) IsZero() bool {
	return q.Units == 0 && q.Nano == 0
}

// QuotationFromDecimal splits d into units and nano, truncating below 10^-9.
func QuotationFromDecimal(d decimal.Decimal) Quotation {
	units, nano := fromDecimal(d)
	return Quotation{Units: units, Nano: nano}
}

// MoneyValue is a Quotation with an ISO currency code.
type MoneyValue struct {
	Currency string `json:"currency"`
	Units    Int64  `json:"units"`
	Nano     int32  `json:"nano"`
}

// Decimal returns units + nano/10^9 exactly.
func (m MoneyValue) Decimal() decimal.Decimal {
	return toDecimal(m.Units, m.Nano)
}

func (m MoneyValue) String() string {
	if m.Currency == "" {
		return m.Decimal().String()
	}
	return m.Decimal().String() + " " + m.Currency
}

func toDecimal(units Int64, nano int32) decimal.Decimal {
	return decimal.New(int64(units), 0).Add(decimal.New(int64(nano), nanoExp))
}

func fromDecimal(d decimal.Decimal) (Int64, int32) {
	d = d.Truncate(-nanoExp)
	units := d.Truncate(0)
	nano := d.Sub(units).Shift(-nanoExp)
	return Int64(units.IntPart()), int32(nano.IntPart())
}
