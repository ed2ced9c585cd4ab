package api

import "sort"

// ServicePath prefixes every operation path.
const ServicePath = "/tinkoff.public.invest.api.contract.v1.InstrumentsService/"

// ParamKind selects how an argument is validated and encoded.
type ParamKind int

const (
	ParamString         ParamKind = iota + 1 // non-empty string
	ParamUID                                 // UUID string
	ParamInt                                 // non-negative integer
	ParamBool                                // boolean flag
	ParamIdentifier                          // model.Identifier, expands to idType/classCode/id
	ParamStatus                              // model.InstrumentStatus, always sent
	ParamInstrumentKind                      // model.InstrumentKind
	ParamAssetType                           // model.AssetType
	ParamBondEventType                       // model.BondEventType
	ParamFavoriteAction                      // model.FavoriteAction
	ParamPeriod                              // model.DateRange, expands to from/to
	ParamUIDList                             // non-empty []string of UUIDs
	ParamPaging                              // model.Paging
	ParamFavorites                           // []model.FavoriteInstrument
)

func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamUID:
		return "uid"
	case ParamInt:
		return "int"
	case ParamBool:
		return "bool"
	case ParamIdentifier:
		return "identifier"
	case ParamStatus:
		return "instrument status"
	case ParamInstrumentKind:
		return "instrument kind"
	case ParamAssetType:
		return "asset type"
	case ParamBondEventType:
		return "bond event type"
	case ParamFavoriteAction:
		return "favorite action"
	case ParamPeriod:
		return "period"
	case ParamUIDList:
		return "uid list"
	case ParamPaging:
		return "paging"
	case ParamFavorites:
		return "favorite instruments"
	default:
		return "unknown"
	}
}

// Param describes one named argument of an operation. Name is both the
// argument key and the wire field, except for the expanding kinds.
type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
}

// Descriptor is the static description of one remote operation.
type Descriptor struct {
	Name       string
	Summary    string
	Params     []Param
	Keys       []string // top-level keys a 2xx body must carry
	Deprecated bool

	response func() any
}

// Path returns the operation path relative to the base URL.
func (d Descriptor) Path() string {
	return ServicePath + d.Name
}

// NewResponse returns a pointer to a zero response shape for the operation.
func (d Descriptor) NewResponse() any {
	return d.response()
}

func (d Descriptor) param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func shape[T any]() func() any {
	return func() any { return new(T) }
}

// Common parameter lists.
var (
	statusParams     = []Param{{Name: "instrumentStatus", Kind: ParamStatus}}
	identifierParams = []Param{{Name: "id", Kind: ParamIdentifier, Required: true}}
	instrumentParams = []Param{{Name: "instrumentId", Kind: ParamString, Required: true}}
	periodParams     = []Param{
		{Name: "instrumentId", Kind: ParamString, Required: true},
		{Name: "period", Kind: ParamPeriod},
	}
	pagingParams  = []Param{{Name: "paging", Kind: ParamPaging}}
	instrumentKey = []string{"instrument"}
)

var catalog = []Descriptor{
	// Bonds
	{Name: "Bonds", Summary: "list bonds", Params: statusParams, response: shape[BondsResponse]()},
	{Name: "BondBy", Summary: "get one bond", Params: identifierParams, Keys: instrumentKey, response: shape[BondResponse]()},
	{Name: "GetBondCoupons", Summary: "bond coupon schedule", Params: periodParams, response: shape[GetBondCouponsResponse]()},
	{
		Name:    "GetBondEvents",
		Summary: "bond coupon, call, maturity and conversion events",
		Params: []Param{
			{Name: "instrumentId", Kind: ParamString, Required: true},
			{Name: "period", Kind: ParamPeriod},
			{Name: "eventType", Kind: ParamBondEventType},
		},
		response: shape[GetBondEventsResponse](),
	},
	{Name: "GetAccruedInterests", Summary: "accrued coupon income", Params: periodParams, response: shape[GetAccruedInterestsResponse]()},

	// Shares
	{Name: "Shares", Summary: "list shares", Params: statusParams, response: shape[SharesResponse]()},
	{Name: "ShareBy", Summary: "get one share", Params: identifierParams, Keys: instrumentKey, response: shape[ShareResponse]()},
	{Name: "GetDividends", Summary: "dividend payments", Params: periodParams, response: shape[GetDividendsResponse]()},

	// ETFs and currencies
	{Name: "Etfs", Summary: "list ETFs", Params: statusParams, response: shape[EtfsResponse]()},
	{Name: "EtfBy", Summary: "get one ETF", Params: identifierParams, Keys: instrumentKey, response: shape[EtfResponse]()},
	{Name: "Currencies", Summary: "list currencies", Params: statusParams, response: shape[CurrenciesResponse]()},
	{Name: "CurrencyBy", Summary: "get one currency", Params: identifierParams, Keys: instrumentKey, response: shape[CurrencyResponse]()},

	// Futures
	{Name: "Futures", Summary: "list futures", Params: statusParams, response: shape[FuturesResponse]()},
	{Name: "FutureBy", Summary: "get one futures contract", Params: identifierParams, Keys: instrumentKey, response: shape[FutureResponse]()},
	{Name: "GetFuturesMargin", Summary: "futures margin requirements", Params: instrumentParams, response: shape[GetFuturesMarginResponse]()},

	// Options
	{Name: "Options", Summary: "list options", Params: statusParams, Deprecated: true, response: shape[OptionsResponse]()},
	{Name: "OptionBy", Summary: "get one option", Params: identifierParams, Keys: instrumentKey, response: shape[OptionResponse]()},
	{
		Name:    "OptionsBy",
		Summary: "options on a basic asset",
		Params: []Param{
			{Name: "basicAssetUid", Kind: ParamUID},
			{Name: "basicAssetPositionUid", Kind: ParamUID},
		},
		response: shape[OptionsResponse](),
	},

	// Structured notes
	{Name: "StructuredNotes", Summary: "list structured notes", Params: statusParams, response: shape[StructuredNotesResponse]()},
	{Name: "StructuredNoteBy", Summary: "get one structured note", Params: identifierParams, Keys: instrumentKey, response: shape[StructuredNoteResponse]()},

	// Generic instruments
	{Name: "Indicatives", Summary: "list indicative instruments", response: shape[IndicativesResponse]()},
	{
		Name:    "FindInstrument",
		Summary: "search instruments",
		Params: []Param{
			{Name: "query", Kind: ParamString, Required: true},
			{Name: "instrumentKind", Kind: ParamInstrumentKind},
			{Name: "apiTradeAvailableFlag", Kind: ParamBool},
		},
		response: shape[FindInstrumentResponse](),
	},
	{Name: "GetInstrumentBy", Summary: "get any instrument", Params: identifierParams, Keys: instrumentKey, response: shape[InstrumentByResponse]()},

	// Assets
	{Name: "GetAssets", Summary: "list assets", Params: []Param{{Name: "assetType", Kind: ParamAssetType}}, response: shape[AssetsResponse]()},
	{
		Name:     "GetAssetBy",
		Summary:  "get one asset",
		Params:   []Param{{Name: "assetUid", Kind: ParamUID, Required: true}},
		Keys:     []string{"asset"},
		response: shape[AssetResponse](),
	},
	{
		Name:     "GetAssetFundamentals",
		Summary:  "fundamental indicators of assets",
		Params:   []Param{{Name: "assets", Kind: ParamUIDList, Required: true}},
		response: shape[GetAssetFundamentalsResponse](),
	},
	{Name: "GetAssetReports", Summary: "issuer report schedule", Params: periodParams, response: shape[GetAssetReportsResponse]()},

	// Brands and countries
	{Name: "GetBrands", Summary: "list brands", Params: pagingParams, response: shape[GetBrandsResponse]()},
	{
		Name:     "GetBrandBy",
		Summary:  "get one brand",
		Params:   []Param{{Name: "brandUid", Kind: ParamUID, Required: true}},
		Keys:     []string{"uid"},
		response: shape[Brand](),
	},
	{Name: "GetCountries", Summary: "country reference list", response: shape[GetCountriesResponse]()},

	// Analytics
	{Name: "GetConsensusForecasts", Summary: "analyst consensus forecasts", Params: pagingParams, response: shape[GetConsensusForecastsResponse]()},
	{Name: "GetForecastBy", Summary: "analyst targets for an instrument", Params: instrumentParams, response: shape[GetForecastResponse]()},
	{
		Name:    "GetInsiderDeals",
		Summary: "insider trades",
		Params: []Param{
			{Name: "instrumentId", Kind: ParamString, Required: true},
			{Name: "period", Kind: ParamPeriod},
			{Name: "limit", Kind: ParamInt},
			{Name: "nextCursor", Kind: ParamString},
		},
		response: shape[GetInsiderDealsResponse](),
	},
	{Name: "GetRiskRates", Summary: "risk rates", Params: instrumentParams, response: shape[RiskRatesResponse]()},

	// Schedules
	{
		Name:    "TradingSchedules",
		Summary: "exchange trading schedules",
		Params: []Param{
			{Name: "exchange", Kind: ParamString},
			{Name: "period", Kind: ParamPeriod},
		},
		response: shape[TradingSchedulesResponse](),
	},

	// Favorites
	{Name: "GetFavorites", Summary: "favorite instruments", response: shape[GetFavoritesResponse]()},
	{Name: "GetFavoriteGroups", Summary: "favorite groups", response: shape[GetFavoriteGroupsResponse]()},
	{
		Name:    "CreateFavoriteGroup",
		Summary: "create a favorite group",
		Params: []Param{
			{Name: "name", Kind: ParamString, Required: true},
			{Name: "instruments", Kind: ParamFavorites},
		},
		Keys:     []string{"groupId"},
		response: shape[CreateFavoriteGroupResponse](),
	},
	{
		Name:    "EditFavorites",
		Summary: "add or remove favorite instruments",
		Params: []Param{
			{Name: "instruments", Kind: ParamFavorites, Required: true},
			{Name: "actionType", Kind: ParamFavoriteAction, Required: true},
		},
		response: shape[EditFavoritesResponse](),
	},
	{
		Name:     "DeleteFavoriteGroup",
		Summary:  "delete a favorite group",
		Params:   []Param{{Name: "favoriteGroupId", Kind: ParamString, Required: true}},
		response: shape[DeleteFavoriteGroupResponse](),
	},
}

var catalogIndex = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(catalog))
	for i := range catalog {
		m[catalog[i].Name] = &catalog[i]
	}
	return m
}()

// Lookup returns the descriptor for an operation name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := catalogIndex[name]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// Catalog returns every descriptor sorted by name.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
