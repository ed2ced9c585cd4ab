package api

import (
	"context"

	"github.com/rickgao/tinvest-instruments/internal/model"
)

// GetAssets lists assets. AssetUnspecified returns every type.
func (c *Client) GetAssets(ctx context.Context, assetType model.AssetType) (*AssetsResponse, error) {
	return invoke[AssetsResponse](ctx, c, "GetAssets", Args{"assetType": assetType})
}

// GetAssetBy fetches one asset by UID.
func (c *Client) GetAssetBy(ctx context.Context, assetUID string) (*AssetResponse, error) {
	return invoke[AssetResponse](ctx, c, "GetAssetBy", Args{"assetUid": assetUID})
}

// GetAssetFundamentals returns fundamentals for one or more asset UIDs.
func (c *Client) GetAssetFundamentals(ctx context.Context, assetUIDs []string) (*GetAssetFundamentalsResponse, error) {
	return invoke[GetAssetFundamentalsResponse](ctx, c, "GetAssetFundamentals", Args{"assets": assetUIDs})
}

func (c *Client) GetAssetReports(ctx context.Context, instrumentID string, period model.DateRange) (*GetAssetReportsResponse, error) {
	return invoke[GetAssetReportsResponse](ctx, c, "GetAssetReports", Args{"instrumentId": instrumentID, "period": period})
}

// GetBrands returns one page of brands. A zero Paging uses the service default.
func (c *Client) GetBrands(ctx context.Context, paging model.Paging) (*GetBrandsResponse, error) {
	return invoke[GetBrandsResponse](ctx, c, "GetBrands", Args{"paging": paging})
}

func (c *Client) GetBrandBy(ctx context.Context, brandUID string) (*Brand, error) {
	return invoke[Brand](ctx, c, "GetBrandBy", Args{"brandUid": brandUID})
}

func (c *Client) GetCountries(ctx context.Context) (*GetCountriesResponse, error) {
	return invoke[GetCountriesResponse](ctx, c, "GetCountries", nil)
}

// GetConsensusForecasts returns one page of consensus forecasts.
func (c *Client) GetConsensusForecasts(ctx context.Context, paging model.Paging) (*GetConsensusForecastsResponse, error) {
	return invoke[GetConsensusForecastsResponse](ctx, c, "GetConsensusForecasts", Args{"paging": paging})
}

// GetForecastBy returns analyst targets and their consensus for an instrument.
func (c *Client) GetForecastBy(ctx context.Context, instrumentID string) (*GetForecastResponse, error) {
	return invoke[GetForecastResponse](ctx, c, "GetForecastBy", Args{"instrumentId": instrumentID})
}

// GetInsiderDeals returns one page of insider trades. Pass the previous
// response's NextCursor to continue; limit 0 uses the service default.
func (c *Client) GetInsiderDeals(ctx context.Context, instrumentID string, period model.DateRange, limit int, cursor string) (*GetInsiderDealsResponse, error) {
	return invoke[GetInsiderDealsResponse](ctx, c, "GetInsiderDeals", Args{
		"instrumentId": instrumentID,
		"period":       period,
		"limit":        limit,
		"nextCursor":   cursor,
	})
}

func (c *Client) GetRiskRates(ctx context.Context, instrumentID string) (*RiskRatesResponse, error) {
	return invoke[RiskRatesResponse](ctx, c, "GetRiskRates", Args{"instrumentId": instrumentID})
}

// TradingSchedules returns exchange schedules. An empty exchange returns all.
func (c *Client) TradingSchedules(ctx context.Context, exchange string, period model.DateRange) (*TradingSchedulesResponse, error) {
	return invoke[TradingSchedulesResponse](ctx, c, "TradingSchedules", Args{"exchange": exchange, "period": period})
}
