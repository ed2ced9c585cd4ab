package api

import (
	"context"

	"github.com/rickgao/tinvest-instruments/internal/model"
)

// Bonds lists bonds. StatusUnspecified leaves the filter to the service.
func (c *Client) Bonds(ctx context.Context, status model.InstrumentStatus) (*BondsResponse, error) {
	return invoke[BondsResponse](ctx, c, "Bonds", Args{"instrumentStatus": status})
}

// BondBy fetches one bond.
func (c *Client) BondBy(ctx context.Context, id model.Identifier) (*BondResponse, error) {
	return invoke[BondResponse](ctx, c, "BondBy", Args{"id": id})
}

// GetBondCoupons returns the coupon schedule of a bond within period.
func (c *Client) GetBondCoupons(ctx context.Context, instrumentID string, period model.DateRange) (*GetBondCouponsResponse, error) {
	return invoke[GetBondCouponsResponse](ctx, c, "GetBondCoupons", Args{"instrumentId": instrumentID, "period": period})
}

// GetBondEvents returns bond events within period. BondEventUnspecified
// returns every event type.
func (c *Client) GetBondEvents(ctx context.Context, instrumentID string, period model.DateRange, eventType model.BondEventType) (*GetBondEventsResponse, error) {
	return invoke[GetBondEventsResponse](ctx, c, "GetBondEvents", Args{
		"instrumentId": instrumentID,
		"period":       period,
		"eventType":    eventType,
	})
}

func (c *Client) GetAccruedInterests(ctx context.Context, instrumentID string, period model.DateRange) (*GetAccruedInterestsResponse, error) {
	return invoke[GetAccruedInterestsResponse](ctx, c, "GetAccruedInterests", Args{"instrumentId": instrumentID, "period": period})
}

// Shares lists shares.
func (c *Client) Shares(ctx context.Context, status model.InstrumentStatus) (*SharesResponse, error) {
	return invoke[SharesResponse](ctx, c, "Shares", Args{"instrumentStatus": status})
}

// ShareBy fetches one share.
func (c *Client) ShareBy(ctx context.Context, id model.Identifier) (*ShareResponse, error) {
	return invoke[ShareResponse](ctx, c, "ShareBy", Args{"id": id})
}

func (c *Client) GetDividends(ctx context.Context, instrumentID string, period model.DateRange) (*GetDividendsResponse, error) {
	return invoke[GetDividendsResponse](ctx, c, "GetDividends", Args{"instrumentId": instrumentID, "period": period})
}

// Etfs lists exchange-traded funds.
func (c *Client) Etfs(ctx context.Context, status model.InstrumentStatus) (*EtfsResponse, error) {
	return invoke[EtfsResponse](ctx, c, "Etfs", Args{"instrumentStatus": status})
}

func (c *Client) EtfBy(ctx context.Context, id model.Identifier) (*EtfResponse, error) {
	return invoke[EtfResponse](ctx, c, "EtfBy", Args{"id": id})
}

// Currencies lists currencies.
func (c *Client) Currencies(ctx context.Context, status model.InstrumentStatus) (*CurrenciesResponse, error) {
	return invoke[CurrenciesResponse](ctx, c, "Currencies", Args{"instrumentStatus": status})
}

func (c *Client) CurrencyBy(ctx context.Context, id model.Identifier) (*CurrencyResponse, error) {
	return invoke[CurrencyResponse](ctx, c, "CurrencyBy", Args{"id": id})
}

// Futures lists futures contracts.
func (c *Client) Futures(ctx context.Context, status model.InstrumentStatus) (*FuturesResponse, error) {
	return invoke[FuturesResponse](ctx, c, "Futures", Args{"instrumentStatus": status})
}

func (c *Client) FutureBy(ctx context.Context, id model.Identifier) (*FutureResponse, error) {
	return invoke[FutureResponse](ctx, c, "FutureBy", Args{"id": id})
}

// GetFuturesMargin returns the margin requirements of a futures contract.
func (c *Client) GetFuturesMargin(ctx context.Context, instrumentID string) (*GetFuturesMarginResponse, error) {
	return invoke[GetFuturesMarginResponse](ctx, c, "GetFuturesMargin", Args{"instrumentId": instrumentID})
}

// Options lists options.
//
// Deprecated: the service deprecated this listing; use OptionsBy.
func (c *Client) Options(ctx context.Context, status model.InstrumentStatus) (*OptionsResponse, error) {
	return invoke[OptionsResponse](ctx, c, "Options", Args{"instrumentStatus": status})
}

func (c *Client) OptionBy(ctx context.Context, id model.Identifier) (*OptionResponse, error) {
	return invoke[OptionResponse](ctx, c, "OptionBy", Args{"id": id})
}

// OptionsBy lists options on a basic asset. Either UID may be empty.
func (c *Client) OptionsBy(ctx context.Context, basicAssetUID, basicAssetPositionUID string) (*OptionsResponse, error) {
	return invoke[OptionsResponse](ctx, c, "OptionsBy", Args{
		"basicAssetUid":         basicAssetUID,
		"basicAssetPositionUid": basicAssetPositionUID,
	})
}

// StructuredNotes lists structured notes.
func (c *Client) StructuredNotes(ctx context.Context, status model.InstrumentStatus) (*StructuredNotesResponse, error) {
	return invoke[StructuredNotesResponse](ctx, c, "StructuredNotes", Args{"instrumentStatus": status})
}

func (c *Client) StructuredNoteBy(ctx context.Context, id model.Identifier) (*StructuredNoteResponse, error) {
	return invoke[StructuredNoteResponse](ctx, c, "StructuredNoteBy", Args{"id": id})
}

// Indicatives lists indices, commodities and other non-tradable instruments.
func (c *Client) Indicatives(ctx context.Context) (*IndicativesResponse, error) {
	return invoke[IndicativesResponse](ctx, c, "Indicatives", nil)
}

// FindInstrument searches instruments by query. KindUnspecified searches
// every kind; tradableOnly restricts hits to instruments tradable via the API.
func (c *Client) FindInstrument(ctx context.Context, query string, kind model.InstrumentKind, tradableOnly bool) (*FindInstrumentResponse, error) {
	args := Args{"query": query, "instrumentKind": kind}
	if tradableOnly {
		args["apiTradeAvailableFlag"] = true
	}
	return invoke[FindInstrumentResponse](ctx, c, "FindInstrument", args)
}

// GetInstrumentBy fetches the common view of any instrument.
func (c *Client) GetInstrumentBy(ctx context.Context, id model.Identifier) (*InstrumentByResponse, error) {
	return invoke[InstrumentByResponse](ctx, c, "GetInstrumentBy", Args{"id": id})
}
