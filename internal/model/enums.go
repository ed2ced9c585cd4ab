package model

import "strings"

// InstrumentStatus restricts listing calls to a subset of instruments.
type InstrumentStatus int

const (
	StatusUnspecified InstrumentStatus = iota
	StatusBase                         // instruments available for trading through the API
	StatusAll                          // every instrument known to the service
)

// Wire returns the service token for the status.
func (s InstrumentStatus) Wire() (string, error) {
	switch s {
	case StatusUnspecified:
		return "INSTRUMENT_STATUS_UNSPECIFIED", nil
	case StatusBase:
		return "INSTRUMENT_STATUS_BASE", nil
	case StatusAll:
		return "INSTRUMENT_STATUS_ALL", nil
	default:
		return "", invalidf("unknown instrument status %d", int(s))
	}
}

// ParseInstrumentStatus accepts a wire token or its short form ("base", "all").
func ParseInstrumentStatus(s string) (InstrumentStatus, error) {
	switch normalize(s, "INSTRUMENT_STATUS_") {
	case "", "UNSPECIFIED":
		return StatusUnspecified, nil
	case "BASE":
		return StatusBase, nil
	case "ALL":
		return StatusAll, nil
	default:
		return 0, invalidf("unknown instrument status %q", s)
	}
}

// InstrumentKind filters search results by instrument type.
type InstrumentKind int

const (
	KindUnspecified InstrumentKind = iota
	KindBond
	KindShare
	KindCurrency
	KindETF
	KindFutures
	KindStructuredProduct
	KindOption
)

// Wire returns the service token for the kind.
func (k InstrumentKind) Wire() (string, error) {
	switch k {
	case KindUnspecified:
		return "INSTRUMENT_TYPE_UNSPECIFIED", nil
	case KindBond:
		return "INSTRUMENT_TYPE_BOND", nil
	case KindShare:
		return "INSTRUMENT_TYPE_SHARE", nil
	case KindCurrency:
		return "INSTRUMENT_TYPE_CURRENCY", nil
	case KindETF:
		return "INSTRUMENT_TYPE_ETF", nil
	case KindFutures:
		return "INSTRUMENT_TYPE_FUTURES", nil
	case KindStructuredProduct:
		return "INSTRUMENT_TYPE_SP", nil
	case KindOption:
		return "INSTRUMENT_TYPE_OPTION", nil
	default:
		return "", invalidf("unknown instrument kind %d", int(k))
	}
}

// ParseInstrumentKind accepts a wire token or its short form ("bond", "etf", ...).
func ParseInstrumentKind(s string) (InstrumentKind, error) {
	switch normalize(s, "INSTRUMENT_TYPE_") {
	case "", "UNSPECIFIED":
		return KindUnspecified, nil
	case "BOND":
		return KindBond, nil
	case "SHARE":
		return KindShare, nil
	case "CURRENCY":
		return KindCurrency, nil
	case "ETF":
		return KindETF, nil
	case "FUTURES":
		return KindFutures, nil
	case "SP":
		return KindStructuredProduct, nil
	case "OPTION":
		return KindOption, nil
	default:
		return 0, invalidf("unknown instrument kind %q", s)
	}
}

// AssetType filters GetAssets.
type AssetType int

const (
	AssetUnspecified AssetType = iota
	AssetCurrency
	AssetCommodity
	AssetIndex
	AssetSecurity
)

// Wire returns the service token for the asset type.
func (a AssetType) Wire() (string, error) {
	switch a {
	case AssetUnspecified:
		return "ASSET_TYPE_UNSPECIFIED", nil
	case AssetCurrency:
		return "ASSET_TYPE_CURRENCY", nil
	case AssetCommodity:
		return "ASSET_TYPE_COMMODITY", nil
	case AssetIndex:
		return "ASSET_TYPE_INDEX", nil
	case AssetSecurity:
		return "ASSET_TYPE_SECURITY", nil
	default:
		return "", invalidf("unknown asset type %d", int(a))
	}
}

// ParseAssetType accepts a wire token or its short form ("currency", "index", ...).
func ParseAssetType(s string) (AssetType, error) {
	switch normalize(s, "ASSET_TYPE_") {
	case "", "UNSPECIFIED":
		return AssetUnspecified, nil
	case "CURRENCY":
		return AssetCurrency, nil
	case "COMMODITY":
		return AssetCommodity, nil
	case "INDEX":
		return AssetIndex, nil
	case "SECURITY":
		return AssetSecurity, nil
	default:
		return 0, invalidf("unknown asset type %q", s)
	}
}

// BondEventType filters GetBondEvents.
type BondEventType int

const (
	BondEventUnspecified BondEventType = iota
	BondEventCoupon
	BondEventCall
	BondEventMaturity
	BondEventConversion
)

// Wire returns the service token for the event type.
func (e BondEventType) Wire() (string, error) {
	switch e {
	case BondEventUnspecified:
		return "EVENT_TYPE_UNSPECIFIED", nil
	case BondEventCoupon:
		return "EVENT_TYPE_CPN", nil
	case BondEventCall:
		return "EVENT_TYPE_CALL", nil
	case BondEventMaturity:
		return "EVENT_TYPE_MTY", nil
	case BondEventConversion:
		return "EVENT_TYPE_CONV", nil
	default:
		return "", invalidf("unknown bond event type %d", int(e))
	}
}

// ParseBondEventType accepts a wire token or its short form ("cpn", "mty", ...).
func ParseBondEventType(s string) (BondEventType, error) {
	switch normalize(s, "EVENT_TYPE_") {
	case "", "UNSPECIFIED":
		return BondEventUnspecified, nil
	case "CPN":
		return BondEventCoupon, nil
	case "CALL":
		return BondEventCall, nil
	case "MTY":
		return BondEventMaturity, nil
	case "CONV":
		return BondEventConversion, nil
	default:
		return 0, invalidf("unknown bond event type %q", s)
	}
}

// FavoriteAction is the EditFavorites operation mode.
type FavoriteAction int

const (
	FavoriteActionUnspecified FavoriteAction = iota
	FavoriteAdd
	FavoriteDelete
)

// Wire returns the service token for the action. Unspecified is rejected: the
// service would treat it as a no-op.
func (a FavoriteAction) Wire() (string, error) {
	switch a {
	case FavoriteAdd:
		return "EDIT_FAVORITES_ACTION_TYPE_ADD", nil
	case FavoriteDelete:
		return "EDIT_FAVORITES_ACTION_TYPE_DEL", nil
	case FavoriteActionUnspecified:
		return "", invalidf("favorites action is not set")
	default:
		return "", invalidf("unknown favorites action %d", int(a))
	}
}

// ParseFavoriteAction accepts a wire token or its short form ("add", "del").
func ParseFavoriteAction(s string) (FavoriteAction, error) {
	switch normalize(s, "EDIT_FAVORITES_ACTION_TYPE_") {
	case "ADD":
		return FavoriteAdd, nil
	case "DEL", "DELETE":
		return FavoriteDelete, nil
	default:
		return 0, invalidf("unknown favorites action %q", s)
	}
}

func normalize(s, prefix string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.TrimPrefix(s, prefix)
}
