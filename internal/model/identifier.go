package model

import (
	"strings"

	"github.com/google/uuid"
)

// IDType discriminates which variant of an Identifier is populated.
type IDType int

const (
	IDTypeUnspecified IDType = iota
	IDTypeFIGI
	IDTypeTicker
	IDTypeUID
	IDTypePositionUID
)

// Wire returns the service token for the ID type.
func (t IDType) Wire() (string, error) {
	switch t {
	case IDTypeFIGI:
		return "INSTRUMENT_ID_TYPE_FIGI", nil
	case IDTypeTicker:
		return "INSTRUMENT_ID_TYPE_TICKER", nil
	case IDTypeUID:
		return "INSTRUMENT_ID_TYPE_UID", nil
	case IDTypePositionUID:
		return "INSTRUMENT_ID_TYPE_POSITION_UID", nil
	case IDTypeUnspecified:
		return "", invalidf("instrument id type is not set")
	default:
		return "", invalidf("unknown instrument id type %d", int(t))
	}
}

func (t IDType) String() string {
	switch t {
	case IDTypeFIGI:
		return "figi"
	case IDTypeTicker:
		return "ticker"
	case IDTypeUID:
		return "uid"
	case IDTypePositionUID:
		return "position_uid"
	default:
		return "unspecified"
	}
}

// Identifier references a single instrument. Build it with FIGI, Ticker, UID
// or PositionUID rather than by hand.
type Identifier struct {
	Type      IDType
	ID        string
	ClassCode string // Ticker variant only
}

// FIGI identifies an instrument by its FIGI.
func FIGI(figi string) Identifier {
	return Identifier{Type: IDTypeFIGI, ID: figi}
}

// Ticker identifies an instrument by ticker within a trading class (e.g. "SBER", "TQBR").
func Ticker(ticker, classCode string) Identifier {
	return Identifier{Type: IDTypeTicker, ID: ticker, ClassCode: classCode}
}

// UID identifies an instrument by its instrument UID.
func UID(uid string) Identifier {
	return Identifier{Type: IDTypeUID, ID: uid}
}

// PositionUID identifies an instrument by its position UID.
func PositionUID(uid string) Identifier {
	return Identifier{Type: IDTypePositionUID, ID: uid}
}

// IdentifierFields is the wire form of an Identifier.
type IdentifierFields struct {
	IDType    string
	ClassCode string // empty unless IDType is the ticker token
	ID        string
}

// Encode validates the identifier and returns its wire fields.
func (id Identifier) Encode() (IdentifierFields, error) {
	idType, err := id.Type.Wire()
	if err != nil {
		return IdentifierFields{}, err
	}

	value := strings.TrimSpace(id.ID)
	classCode := strings.TrimSpace(id.ClassCode)

	switch id.Type {
	case IDTypeTicker:
		if value == "" && classCode != "" {
			return IdentifierFields{}, invalidf("class code %q given without a ticker", classCode)
		}
		if value == "" {
			return IdentifierFields{}, invalidf("ticker is required")
		}
		if classCode == "" {
			return IdentifierFields{}, invalidf("ticker %q requires a class code", value)
		}
	default:
		if classCode != "" {
			return IdentifierFields{}, invalidf("class code %q is only valid with a ticker, got %s", classCode, id.Type)
		}
		if value == "" {
			return IdentifierFields{}, invalidf("%s is required", id.Type)
		}
		if id.Type == IDTypeUID || id.Type == IDTypePositionUID {
			if _, err := uuid.Parse(value); err != nil {
				return IdentifierFields{}, invalidf("%s %q is not a UUID", id.Type, value)
			}
		}
	}

	return IdentifierFields{IDType: idType, ClassCode: classCode, ID: value}, nil
}

// ValidateUID checks that s is a well-formed UUID. field names the argument in
// the returned error.
func ValidateUID(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return invalidf("%s is required", field)
	}
	if _, err := uuid.Parse(s); err != nil {
		return invalidf("%s %q is not a UUID", field, s)
	}
	return nil
}
