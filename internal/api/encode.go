package api

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rickgao/tinvest-instruments/internal/model"
)

// Args holds the named arguments of one call. Keys are the descriptor's
// parameter names; a nil value counts as absent.
//
// Values are typed model values (model.Identifier, model.DateRange, ...) or
// their decoded-JSON forms (string, float64, map[string]any, []any), so
// arguments read from a JSON document can be passed through unchanged.
type Args map[string]any

// encodeArgs validates args against d and returns the wire body.
func encodeArgs(d *Descriptor, args Args) (map[string]any, error) {
	for name := range args {
		if _, ok := d.param(name); !ok {
			return nil, fmt.Errorf("unknown argument %q", name)
		}
	}

	body := make(map[string]any, len(d.Params)+2)
	for _, p := range d.Params {
		v, present := args[p.Name]
		if v == nil {
			present = false
		}
		if !present {
			if p.Required {
				return nil, fmt.Errorf("missing required argument %q", p.Name)
			}
			if p.Kind == ParamStatus {
				body[p.Name] = mustWire(model.StatusUnspecified.Wire())
			}
			continue
		}

		if err := encodeParam(body, p, v); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	return body, nil
}

func encodeParam(body map[string]any, p Param, v any) error {
	switch p.Kind {
	case ParamString:
		s, err := asString(v)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			if p.Required {
				return fmt.Errorf("must not be empty")
			}
			return nil
		}
		body[p.Name] = s

	case ParamUID:
		s, err := asString(v)
		if err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" && !p.Required {
			return nil
		}
		if err := model.ValidateUID(p.Name, s); err != nil {
			return err
		}
		body[p.Name] = strings.TrimSpace(s)

	case ParamInt:
		n, err := asInt(v)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("must be >= 0, got %d", n)
		}
		if n > 0 {
			body[p.Name] = n
		}

	case ParamBool:
		b, ok := v.(bool)
		if !ok {
			return typeMismatch("bool", v)
		}
		body[p.Name] = b

	case ParamIdentifier:
		id, err := asIdentifier(v)
		if err != nil {
			return err
		}
		f, err := id.Encode()
		if err != nil {
			return err
		}
		body["idType"] = f.IDType
		if f.ClassCode != "" {
			body["classCode"] = f.ClassCode
		}
		body["id"] = f.ID

	case ParamStatus:
		s, err := asEnum(v, model.ParseInstrumentStatus)
		if err != nil {
			return err
		}
		w, err := s.Wire()
		if err != nil {
			return err
		}
		body[p.Name] = w

	case ParamInstrumentKind:
		k, err := asEnum(v, model.ParseInstrumentKind)
		if err != nil {
			return err
		}
		return putEnum(body, p.Name, k == model.KindUnspecified, k.Wire)

	case ParamAssetType:
		a, err := asEnum(v, model.ParseAssetType)
		if err != nil {
			return err
		}
		return putEnum(body, p.Name, a == model.AssetUnspecified, a.Wire)

	case ParamBondEventType:
		e, err := asEnum(v, model.ParseBondEventType)
		if err != nil {
			return err
		}
		return putEnum(body, p.Name, e == model.BondEventUnspecified, e.Wire)

	case ParamFavoriteAction:
		a, err := asEnum(v, model.ParseFavoriteAction)
		if err != nil {
			return err
		}
		w, err := a.Wire()
		if err != nil {
			return err
		}
		body[p.Name] = w

	case ParamPeriod:
		r, err := asDateRange(v)
		if err != nil {
			return err
		}
		f, err := r.Encode()
		if err != nil {
			return err
		}
		if f.From != "" {
			body["from"] = f.From
		}
		if f.To != "" {
			body["to"] = f.To
		}

	case ParamUIDList:
		list, err := asStrings(v)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return fmt.Errorf("must not be empty")
		}
		for i, s := range list {
			if err := model.ValidateUID(fmt.Sprintf("%s[%d]", p.Name, i), s); err != nil {
				return err
			}
		}
		body[p.Name] = list

	case ParamPaging:
		pg, err := asPaging(v)
		if err != nil {
			return err
		}
		enc, err := pg.Encode()
		if err != nil {
			return err
		}
		if len(enc) > 0 {
			body[p.Name] = enc
		}

	case ParamFavorites:
		list, err := asFavorites(v)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			if p.Required {
				return fmt.Errorf("must not be empty")
			}
			return nil
		}
		enc, err := model.EncodeFavorites(list)
		if err != nil {
			return err
		}
		body[p.Name] = enc

	default:
		return fmt.Errorf("unsupported parameter kind %d", int(p.Kind))
	}
	return nil
}

// putEnum writes an optional enumeration, omitting the unspecified value.
func putEnum(body map[string]any, name string, unspecified bool, wire func() (string, error)) error {
	w, err := wire()
	if err != nil {
		return err
	}
	if !unspecified {
		body[name] = w
	}
	return nil
}

func mustWire(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

func typeMismatch(want string, v any) error {
	return fmt.Errorf("expected %s, got %T", want, v)
}

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	default:
		return "", typeMismatch("string", v)
	}
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, typeMismatch("integer", v)
	}
}

// asEnum accepts a typed enumeration value or its wire/short name.
func asEnum[E ~int](v any, parse func(string) (E, error)) (E, error) {
	switch e := v.(type) {
	case E:
		return e, nil
	case string:
		return parse(e)
	default:
		var zero E
		return zero, fmt.Errorf("expected %T or string, got %T", zero, v)
	}
}

// asIdentifier accepts a model.Identifier or a map naming exactly one variant:
// {"figi": ...}, {"ticker": ..., "classCode": ...}, {"uid": ...} or {"positionUid": ...}.
func asIdentifier(v any) (model.Identifier, error) {
	switch id := v.(type) {
	case model.Identifier:
		return id, nil
	case *model.Identifier:
		if id == nil {
			return model.Identifier{}, fmt.Errorf("identifier is nil")
		}
		return *id, nil
	case map[string]any:
		return identifierFromMap(id)
	default:
		return model.Identifier{}, typeMismatch("identifier", v)
	}
}

func identifierFromMap(m map[string]any) (model.Identifier, error) {
	var (
		id    model.Identifier
		found int
	)
	for key, raw := range m {
		s, ok := raw.(string)
		if !ok {
			return model.Identifier{}, fmt.Errorf("identifier field %q: %w", key, typeMismatch("string", raw))
		}
		switch key {
		case "figi":
			id.Type, id.ID = model.IDTypeFIGI, s
			found++
		case "ticker":
			id.Type, id.ID = model.IDTypeTicker, s
			found++
		case "uid":
			id.Type, id.ID = model.IDTypeUID, s
			found++
		case "positionUid":
			id.Type, id.ID = model.IDTypePositionUID, s
			found++
		case "classCode":
			id.ClassCode = s
		default:
			return model.Identifier{}, fmt.Errorf("unknown identifier field %q", key)
		}
	}
	if found != 1 {
		return model.Identifier{}, fmt.Errorf("identifier must name exactly one of figi, ticker, uid, positionUid")
	}
	return id, nil
}

// asDateRange accepts a model.DateRange or {"from": RFC3339, "to": RFC3339}.
func asDateRange(v any) (model.DateRange, error) {
	switch r := v.(type) {
	case model.DateRange:
		return r, nil
	case map[string]any:
		var out model.DateRange
		for key, raw := range r {
			s, ok := raw.(string)
			if !ok {
				return model.DateRange{}, fmt.Errorf("period field %q: %w", key, typeMismatch("string", raw))
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return model.DateRange{}, fmt.Errorf("period field %q: %w", key, err)
			}
			switch key {
			case "from":
				out.From = t
			case "to":
				out.To = t
			default:
				return model.DateRange{}, fmt.Errorf("unknown period field %q", key)
			}
		}
		return out, nil
	default:
		return model.DateRange{}, typeMismatch("period", v)
	}
}

func asStrings(v any) ([]string, error) {
	switch l := v.(type) {
	case []string:
		return l, nil
	case []any:
		out := make([]string, 0, len(l))
		for i, raw := range l {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("[%d]: %w", i, typeMismatch("string", raw))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, typeMismatch("list of strings", v)
	}
}

// asPaging accepts a model.Paging or {"limit": n, "pageNumber": n}.
func asPaging(v any) (model.Paging, error) {
	switch p := v.(type) {
	case model.Paging:
		return p, nil
	case map[string]any:
		var out model.Paging
		for key, raw := range p {
			n, err := asInt(raw)
			if err != nil {
				return model.Paging{}, fmt.Errorf("paging field %q: %w", key, err)
			}
			switch key {
			case "limit":
				out.Limit = n
			case "pageNumber":
				out.PageNumber = n
			default:
				return model.Paging{}, fmt.Errorf("unknown paging field %q", key)
			}
		}
		return out, nil
	default:
		return model.Paging{}, typeMismatch("paging", v)
	}
}

// asFavorites accepts []model.FavoriteInstrument or a list of
// {"instrumentId": ...} / {"figi": ...} maps.
func asFavorites(v any) ([]model.FavoriteInstrument, error) {
	switch l := v.(type) {
	case []model.FavoriteInstrument:
		return l, nil
	case []any:
		out := make([]model.FavoriteInstrument, 0, len(l))
		for i, raw := range l {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("[%d]: %w", i, typeMismatch("object", raw))
			}
			var f model.FavoriteInstrument
			for key, rv := range m {
				s, ok := rv.(string)
				if !ok {
					return nil, fmt.Errorf("[%d].%s: %w", i, key, typeMismatch("string", rv))
				}
				switch key {
				case "instrumentId":
					f.InstrumentID = s
				case "figi":
					f.FIGI = s
				default:
					return nil, fmt.Errorf("[%d]: unknown field %q", i, key)
				}
			}
			out = append(out, f)
		}
		return out, nil
	default:
		return nil, typeMismatch("favorite instruments", v)
	}
}
