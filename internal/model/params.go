package model

import (
	"fmt"
	"strings"
	"time"
)

// DateRange bounds a query period. A zero bound is left to the service default.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Period is shorthand for DateRange{From: from, To: to}.
func Period(from, to time.Time) DateRange {
	return DateRange{From: from, To: to}
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// DateRangeFields is the wire form of a DateRange. Empty strings are omitted.
type DateRangeFields struct {
	From string
	To   string
}

// Encode validates ordering and formats the set bounds in UTC.
func (r DateRange) Encode() (DateRangeFields, error) {
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return DateRangeFields{}, invalidf("period start %s is after end %s",
			r.From.UTC().Format(time.RFC3339), r.To.UTC().Format(time.RFC3339))
	}

	var f DateRangeFields
	if !r.From.IsZero() {
		f.From = FormatTimestamp(r.From)
	}
	if !r.To.IsZero() {
		f.To = FormatTimestamp(r.To)
	}
	return f, nil
}

// FormatTimestamp renders t the way the service expects: RFC 3339, UTC, "Z" suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Paging selects one page of a paged listing. Zero values are service defaults.
type Paging struct {
	Limit      int
	PageNumber int
}

// IsZero reports whether no paging was requested.
func (p Paging) IsZero() bool {
	return p.Limit == 0 && p.PageNumber == 0
}

// Encode validates the page selector and returns its wire body.
func (p Paging) Encode() (map[string]any, error) {
	if p.Limit < 0 {
		return nil, invalidf("paging limit must be >= 0, got %d", p.Limit)
	}
	if p.PageNumber < 0 {
		return nil, invalidf("paging page number must be >= 0, got %d", p.PageNumber)
	}

	out := map[string]any{}
	if p.Limit > 0 {
		out["limit"] = p.Limit
	}
	if p.PageNumber > 0 {
		out["pageNumber"] = p.PageNumber
	}
	return out, nil
}

// FavoriteInstrument names an instrument in favorites calls. Exactly one of
// InstrumentID (figi or instrument uid) or FIGI must be set.
type FavoriteInstrument struct {
	InstrumentID string
	FIGI         string
}

// Encode validates the instrument reference and returns its wire body.
func (f FavoriteInstrument) Encode() (map[string]any, error) {
	id := strings.TrimSpace(f.InstrumentID)
	figi := strings.TrimSpace(f.FIGI)

	switch {
	case id != "" && figi != "":
		return nil, invalidf("favorite instrument must set instrument id or figi, not both")
	case id != "":
		return map[string]any{"instrumentId": id}, nil
	case figi != "":
		return map[string]any{"figi": figi}, nil
	default:
		return nil, invalidf("favorite instrument has neither instrument id nor figi")
	}
}

// EncodeFavorites encodes a list of favorite instruments.
func EncodeFavorites(list []FavoriteInstrument) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(list))
	for i, f := range list {
		enc, err := f.Encode()
		if err != nil {
			return nil, fmt.Errorf("instruments[%d]: %w", i, err)
		}
		out = append(out, enc)
	}
	return out, nil
}
