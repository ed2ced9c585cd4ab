package api

import (
	"time"

	"github.com/rickgao/tinvest-instruments/internal/model"
)

// Fields absent from a response decode to their zero value. Timestamps are
// RFC 3339 UTC on the wire.

// InstrumentsResponse is the body of every listing operation.
type InstrumentsResponse[T any] struct {
	Instruments []T `json:"instruments"`
}

// InstrumentResponse is the body of every single-instrument lookup.
type InstrumentResponse[T any] struct {
	Instrument T `json:"instrument"`
}

// Listing and lookup bodies.
type (
	BondsResponse           = InstrumentsResponse[Bond]
	SharesResponse          = InstrumentsResponse[Share]
	EtfsResponse            = InstrumentsResponse[Etf]
	CurrenciesResponse      = InstrumentsResponse[Currency]
	FuturesResponse         = InstrumentsResponse[FuturesContract]
	OptionsResponse         = InstrumentsResponse[OptionContract]
	StructuredNotesResponse = InstrumentsResponse[StructuredNote]

	BondResponse           = InstrumentResponse[Bond]
	ShareResponse          = InstrumentResponse[Share]
	EtfResponse            = InstrumentResponse[Etf]
	CurrencyResponse       = InstrumentResponse[Currency]
	FutureResponse         = InstrumentResponse[FuturesContract]
	OptionResponse         = InstrumentResponse[OptionContract]
	StructuredNoteResponse = InstrumentResponse[StructuredNote]
	InstrumentByResponse   = InstrumentResponse[Instrument]
)

// InstrumentBase holds the fields every instrument type shares.
type InstrumentBase struct {
	FIGI              string          `json:"figi"`
	Ticker            string          `json:"ticker"`
	ClassCode         string          `json:"classCode"`
	ISIN              string          `json:"isin"`
	UID               string          `json:"uid"`
	PositionUID       string          `json:"positionUid"`
	AssetUID          string          `json:"assetUid"`
	Name              string          `json:"name"`
	Lot               int32           `json:"lot"`
	Currency          string          `json:"currency"`
	Exchange          string          `json:"exchange"`
	RealExchange      string          `json:"realExchange"`
	CountryOfRisk     string          `json:"countryOfRisk"`
	CountryOfRiskName string          `json:"countryOfRiskName"`
	TradingStatus     string          `json:"tradingStatus"`
	MinPriceIncrement model.Quotation `json:"minPriceIncrement"`

	// Margin rates
	Klong     model.Quotation `json:"klong"`
	Kshort    model.Quotation `json:"kshort"`
	Dlong     model.Quotation `json:"dlong"`
	Dshort    model.Quotation `json:"dshort"`
	DlongMin  model.Quotation `json:"dlongMin"`
	DshortMin model.Quotation `json:"dshortMin"`

	// Availability flags
	APITradeAvailableFlag bool `json:"apiTradeAvailableFlag"`
	BuyAvailableFlag      bool `json:"buyAvailableFlag"`
	SellAvailableFlag     bool `json:"sellAvailableFlag"`
	ShortEnabledFlag      bool `json:"shortEnabledFlag"`
	OTCFlag               bool `json:"otcFlag"`
	ForIISFlag            bool `json:"forIisFlag"`
	ForQualInvestorFlag   bool `json:"forQualInvestorFlag"`
	WeekendFlag           bool `json:"weekendFlag"`
	BlockedTCAFlag        bool `json:"blockedTcaFlag"`

	First1MinCandleDate time.Time `json:"first1minCandleDate"`
	First1DayCandleDate time.Time `json:"first1dayCandleDate"`
}

// Bond from Bonds / BondBy.
type Bond struct {
	InstrumentBase
	CouponQuantityPerYear int32            `json:"couponQuantityPerYear"`
	MaturityDate          time.Time        `json:"maturityDate"`
	Nominal               model.MoneyValue `json:"nominal"`
	InitialNominal        model.MoneyValue `json:"initialNominal"`
	StateRegDate          time.Time        `json:"stateRegDate"`
	PlacementDate         time.Time        `json:"placementDate"`
	PlacementPrice        model.MoneyValue `json:"placementPrice"`
	AciValue              model.MoneyValue `json:"aciValue"`
	Sector                string           `json:"sector"`
	IssueKind             string           `json:"issueKind"`
	IssueSize             model.Int64      `json:"issueSize"`
	IssueSizePlan         model.Int64      `json:"issueSizePlan"`
	FloatingCouponFlag    bool             `json:"floatingCouponFlag"`
	PerpetualFlag         bool             `json:"perpetualFlag"`
	AmortizationFlag      bool             `json:"amortizationFlag"`
	SubordinatedFlag      bool             `json:"subordinatedFlag"`
	LiquidityFlag         bool             `json:"liquidityFlag"`
	RiskLevel             string           `json:"riskLevel"`
	BondType              string           `json:"bondType"`
}

// Share from Shares / ShareBy.
type Share struct {
	InstrumentBase
	IPODate       time.Time        `json:"ipoDate"`
	IssueSize     model.Int64      `json:"issueSize"`
	IssueSizePlan model.Int64      `json:"issueSizePlan"`
	Sector        string           `json:"sector"`
	Nominal       model.MoneyValue `json:"nominal"`
	DivYieldFlag  bool             `json:"divYieldFlag"`
	ShareType     string           `json:"shareType"`
	LiquidityFlag bool             `json:"liquidityFlag"`
}

// Etf from Etfs / EtfBy.
type Etf struct {
	InstrumentBase
	FixedCommission model.Quotation `json:"fixedCommission"`
	FocusType       string          `json:"focusType"`
	ReleasedDate    time.Time       `json:"releasedDate"`
	NumShares       model.Quotation `json:"numShares"`
	Sector          string          `json:"sector"`
	RebalancingFreq string          `json:"rebalancingFreq"`
	LiquidityFlag   bool            `json:"liquidityFlag"`
}

// Currency from Currencies / CurrencyBy.
type Currency struct {
	InstrumentBase
	Nominal         model.MoneyValue `json:"nominal"`
	IsoCurrencyName string           `json:"isoCurrencyName"`
}

// FuturesContract from Futures / FutureBy.
type FuturesContract struct {
	InstrumentBase
	FirstTradeDate          time.Time        `json:"firstTradeDate"`
	LastTradeDate           time.Time        `json:"lastTradeDate"`
	FuturesType             string           `json:"futuresType"`
	AssetType               string           `json:"assetType"`
	BasicAsset              string           `json:"basicAsset"`
	BasicAssetSize          model.Quotation  `json:"basicAssetSize"`
	BasicAssetPositionUID   string           `json:"basicAssetPositionUid"`
	Sector                  string           `json:"sector"`
	ExpirationDate          time.Time        `json:"expirationDate"`
	InitialMarginOnBuy      model.MoneyValue `json:"initialMarginOnBuy"`
	InitialMarginOnSell     model.MoneyValue `json:"initialMarginOnSell"`
	MinPriceIncrementAmount model.Quotation  `json:"minPriceIncrementAmount"`
}

// OptionContract from Options / OptionBy / OptionsBy.
type OptionContract struct {
	InstrumentBase
	BasicAsset            string           `json:"basicAsset"`
	BasicAssetPositionUID string           `json:"basicAssetPositionUid"`
	BasicAssetSize        model.Quotation  `json:"basicAssetSize"`
	Direction             string           `json:"direction"`
	PaymentType           string           `json:"paymentType"`
	Style                 string           `json:"style"`
	SettlementType        string           `json:"settlementType"`
	StrikePrice           model.MoneyValue `json:"strikePrice"`
	ExpirationDate        time.Time        `json:"expirationDate"`
	FirstTradeDate        time.Time        `json:"firstTradeDate"`
	LastTradeDate         time.Time        `json:"lastTradeDate"`
}

// StructuredNote from StructuredNotes / StructuredNoteBy.
type StructuredNote struct {
	InstrumentBase
	Nominal        model.MoneyValue `json:"nominal"`
	Borrower       string           `json:"borrowName"`
	MaturityDate   time.Time        `json:"maturityDate"`
	PlacementDate  time.Time        `json:"placementDate"`
	IssueSize      model.Int64      `json:"issueSize"`
	IssueSizePlan  model.Int64      `json:"issueSizePlan"`
	Type           string           `json:"type"`
	LogicPortfolio string           `json:"logicPortfolio"`
	AssetType      string           `json:"assetType"`
	Sector         string           `json:"sector"`
}

// Instrument from GetInstrumentBy: the common view of any instrument type.
type Instrument struct {
	InstrumentBase
	InstrumentType string `json:"instrumentType"`
	InstrumentKind string `json:"instrumentKind"`
}

// -----------------------------------------------------------------------------
// Bond and share events
// -----------------------------------------------------------------------------

// Coupon is one scheduled bond coupon.
type Coupon struct {
	FIGI            string           `json:"figi"`
	CouponDate      time.Time        `json:"couponDate"`
	CouponNumber    model.Int64      `json:"couponNumber"`
	FixDate         time.Time        `json:"fixDate"`
	PayOneBond      model.MoneyValue `json:"payOneBond"`
	CouponType      string           `json:"couponType"`
	CouponStartDate time.Time        `json:"couponStartDate"`
	CouponEndDate   time.Time        `json:"couponEndDate"`
	CouponPeriod    int32            `json:"couponPeriod"`
}

// GetBondCouponsResponse from GetBondCoupons.
type GetBondCouponsResponse struct {
	Events []Coupon `json:"events"`
}

// BondEvent is a coupon, call, maturity or conversion event.
type BondEvent struct {
	InstrumentID       string           `json:"instrumentId"`
	EventNumber        int32            `json:"eventNumber"`
	EventDate          time.Time        `json:"eventDate"`
	EventType          string           `json:"eventType"`
	EventTotalVol      model.Quotation  `json:"eventTotalVol"`
	FixDate            time.Time        `json:"fixDate"`
	RateDate           time.Time        `json:"rateDate"`
	DefaultDate        time.Time        `json:"defaultDate"`
	RealPayDate        time.Time        `json:"realPayDate"`
	PayDate            time.Time        `json:"payDate"`
	PayOneBond         model.MoneyValue `json:"payOneBond"`
	MoneyFlowVal       model.MoneyValue `json:"moneyFlowVal"`
	Execution          string           `json:"execution"`
	OperationType      string           `json:"operationType"`
	Value              model.Quotation  `json:"value"`
	Note               string           `json:"note"`
	ConvertToFinToolID string           `json:"convertToFinToolId"`
	CouponStartDate    time.Time        `json:"couponStartDate"`
	CouponEndDate      time.Time        `json:"couponEndDate"`
	CouponPeriod       int32            `json:"couponPeriod"`
	CouponInterestRate model.Quotation  `json:"couponInterestRate"`
}

// GetBondEventsResponse from GetBondEvents.
type GetBondEventsResponse struct {
	Events []BondEvent `json:"events"`
}

// AccruedInterest is accrued coupon income on one date.
type AccruedInterest struct {
	Date         time.Time       `json:"date"`
	Value        model.Quotation `json:"value"`
	ValuePercent model.Quotation `json:"valuePercent"`
	Nominal      model.Quotation `json:"nominal"`
}

// GetAccruedInterestsResponse from GetAccruedInterests.
type GetAccruedInterestsResponse struct {
	AccruedInterests []AccruedInterest `json:"accruedInterests"`
}

// Dividend is one dividend payment.
type Dividend struct {
	DividendNet  model.MoneyValue `json:"dividendNet"`
	PaymentDate  time.Time        `json:"paymentDate"`
	DeclaredDate time.Time        `json:"declaredDate"`
	LastBuyDate  time.Time        `json:"lastBuyDate"`
	DividendType string           `json:"dividendType"`
	RecordDate   time.Time        `json:"recordDate"`
	Regularity   string           `json:"regularity"`
	ClosePrice   model.MoneyValue `json:"closePrice"`
	YieldValue   model.Quotation  `json:"yieldValue"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// GetDividendsResponse from GetDividends.
type GetDividendsResponse struct {
	Dividends []Dividend `json:"dividends"`
}

// AssetReport is a scheduled issuer report.
type AssetReport struct {
	InstrumentID string    `json:"instrumentId"`
	ReportDate   time.Time `json:"reportDate"`
	PeriodYear   int32     `json:"periodYear"`
	PeriodNum    int32     `json:"periodNum"`
	PeriodType   string    `json:"periodType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetAssetReportsResponse from GetAssetReports.
type GetAssetReportsResponse struct {
	Events []AssetReport `json:"events"`
}

// InsiderDeal is one reported insider trade.
type InsiderDeal struct {
	TradeID           model.Int64     `json:"tradeId"`
	Direction         string          `json:"direction"`
	Currency          string          `json:"currency"`
	Date              time.Time       `json:"date"`
	Quantity          model.Int64     `json:"quantity"`
	Price             model.Quotation `json:"price"`
	InstrumentUID     string          `json:"instrumentUid"`
	Ticker            string          `json:"ticker"`
	InvestorName      string          `json:"investorName"`
	InvestorPosition  string          `json:"investorPosition"`
	Percentage        float32         `json:"percentage"`
	IsOptionExecution bool            `json:"isOptionExecution"`
	DisclosureDate    time.Time       `json:"disclosureDate"`
}

// GetInsiderDealsResponse from GetInsiderDeals. NextCursor is returned as-is.
type GetInsiderDealsResponse struct {
	InsiderDeals []InsiderDeal `json:"insiderDeals"`
	NextCursor   string        `json:"nextCursor"`
}

// -----------------------------------------------------------------------------
// Derivatives and analytics
// -----------------------------------------------------------------------------

// GetFuturesMarginResponse from GetFuturesMargin.
type GetFuturesMarginResponse struct {
	InitialMarginOnBuy      model.MoneyValue `json:"initialMarginOnBuy"`
	InitialMarginOnSell     model.MoneyValue `json:"initialMarginOnSell"`
	MinPriceIncrement       model.Quotation  `json:"minPriceIncrement"`
	MinPriceIncrementAmount model.Quotation  `json:"minPriceIncrementAmount"`
}

// ForecastTarget is one analyst's price target.
type ForecastTarget struct {
	UID                string          `json:"uid"`
	Ticker             string          `json:"ticker"`
	Company            string          `json:"company"`
	Recommendation     string          `json:"recommendation"`
	RecommendationDate time.Time       `json:"recommendationDate"`
	Currency           string          `json:"currency"`
	CurrentPrice       model.Quotation `json:"currentPrice"`
	TargetPrice        model.Quotation `json:"targetPrice"`
	PriceChange        model.Quotation `json:"priceChange"`
	PriceChangeRel     model.Quotation `json:"priceChangeRel"`
	ShowName           string          `json:"showName"`
}

// Consensus aggregates the targets for one instrument.
type Consensus struct {
	UID            string          `json:"uid"`
	Ticker         string          `json:"ticker"`
	Recommendation string          `json:"recommendation"`
	Currency       string          `json:"currency"`
	CurrentPrice   model.Quotation `json:"currentPrice"`
	Consensus      model.Quotation `json:"consensus"`
	MinTarget      model.Quotation `json:"minTarget"`
	MaxTarget      model.Quotation `json:"maxTarget"`
	PriceChange    model.Quotation `json:"priceChange"`
	PriceChangeRel model.Quotation `json:"priceChangeRel"`
}

// GetForecastResponse from GetForecastBy.
type GetForecastResponse struct {
	Targets   []ForecastTarget `json:"targets"`
	Consensus Consensus        `json:"consensus"`
}

// ConsensusForecast is one row of GetConsensusForecasts.
type ConsensusForecast struct {
	UID                string          `json:"uid"`
	AssetUID           string          `json:"assetUid"`
	CreatedAt          time.Time       `json:"createdAt"`
	BestTargetPrice    model.Quotation `json:"bestTargetPrice"`
	BestTargetLow      model.Quotation `json:"bestTargetLow"`
	BestTargetHigh     model.Quotation `json:"bestTargetHigh"`
	TotalBuyRecommend  int32           `json:"totalBuyRecommend"`
	TotalHoldRecommend int32           `json:"totalHoldRecommend"`
	TotalSellRecommend int32           `json:"totalSellRecommend"`
	Currency           string          `json:"currency"`
	Consensus          string          `json:"consensus"`
	PrognosisDate      time.Time       `json:"prognosisDate"`
}

// PageInfo echoes the page a paged operation returned.
type PageInfo struct {
	Limit      int32 `json:"limit"`
	PageNumber int32 `json:"pageNumber"`
	TotalCount int32 `json:"totalCount"`
}

// GetConsensusForecastsResponse from GetConsensusForecasts.
type GetConsensusForecastsResponse struct {
	Items []ConsensusForecast `json:"items"`
	Page  PageInfo            `json:"page"`
}

// RiskRate is one risk-rate category.
type RiskRate struct {
	RiskLevelCode string          `json:"riskLevelCode"`
	Value         model.Quotation `json:"value"`
}

// InstrumentRiskRates holds the rates for one instrument.
type InstrumentRiskRates struct {
	InstrumentUID  string     `json:"instrumentUid"`
	ShortRiskRate  RiskRate   `json:"shortRiskRate"`
	LongRiskRate   RiskRate   `json:"longRiskRate"`
	ShortRiskRates []RiskRate `json:"shortRiskRates"`
	LongRiskRates  []RiskRate `json:"longRiskRates"`
	Error          string     `json:"error"`
}

// RiskRatesResponse from GetRiskRates.
type RiskRatesResponse struct {
	InstrumentRiskRates []InstrumentRiskRates `json:"instrumentRiskRates"`
}

// Indicative is a non-tradable reference instrument (index, commodity).
type Indicative struct {
	FIGI              string `json:"figi"`
	Ticker            string `json:"ticker"`
	ClassCode         string `json:"classCode"`
	Currency          string `json:"currency"`
	InstrumentKind    string `json:"instrumentKind"`
	Name              string `json:"name"`
	Exchange          string `json:"exchange"`
	UID               string `json:"uid"`
	BuyAvailableFlag  bool   `json:"buyAvailableFlag"`
	SellAvailableFlag bool   `json:"sellAvailableFlag"`
}

// IndicativesResponse from Indicatives.
type IndicativesResponse struct {
	Instruments []Indicative `json:"instruments"`
}

// -----------------------------------------------------------------------------
// Search, assets, brands, countries, schedules
// -----------------------------------------------------------------------------

// InstrumentShort is one FindInstrument hit.
type InstrumentShort struct {
	ISIN                  string `json:"isin"`
	FIGI                  string `json:"figi"`
	Ticker                string `json:"ticker"`
	ClassCode             string `json:"classCode"`
	InstrumentType        string `json:"instrumentType"`
	InstrumentKind        string `json:"instrumentKind"`
	Name                  string `json:"name"`
	UID                   string `json:"uid"`
	PositionUID           string `json:"positionUid"`
	APITradeAvailableFlag bool   `json:"apiTradeAvailableFlag"`
	ForIISFlag            bool   `json:"forIisFlag"`
	ForQualInvestorFlag   bool   `json:"forQualInvestorFlag"`
	WeekendFlag           bool   `json:"weekendFlag"`
	BlockedTCAFlag        bool   `json:"blockedTcaFlag"`
	Lot                   int32  `json:"lot"`
}

// FindInstrumentResponse from FindInstrument.
type FindInstrumentResponse struct {
	Instruments []InstrumentShort `json:"instruments"`
}

// AssetInstrument links an asset to one of its instruments.
type AssetInstrument struct {
	UID            string `json:"uid"`
	FIGI           string `json:"figi"`
	InstrumentType string `json:"instrumentType"`
	Ticker         string `json:"ticker"`
	ClassCode      string `json:"classCode"`
	InstrumentKind string `json:"instrumentKind"`
	PositionUID    string `json:"positionUid"`
}

// Asset from GetAssets.
type Asset struct {
	UID         string            `json:"uid"`
	Type        string            `json:"type"`
	Name        string            `json:"name"`
	Instruments []AssetInstrument `json:"instruments"`
}

// AssetsResponse from GetAssets.
type AssetsResponse struct {
	Assets []Asset `json:"assets"`
}

// AssetFull from GetAssetBy.
type AssetFull struct {
	UID           string            `json:"uid"`
	Type          string            `json:"type"`
	Name          string            `json:"name"`
	NameBrief     string            `json:"nameBrief"`
	Description   string            `json:"description"`
	DeletedAt     time.Time         `json:"deletedAt"`
	RequiredTests []string          `json:"requiredTests"`
	GosRegCode    string            `json:"gosRegCode"`
	CFI           string            `json:"cfi"`
	CodeNSD       string            `json:"codeNsd"`
	Status        string            `json:"status"`
	Brand         Brand             `json:"brand"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	BrCode        string            `json:"brCode"`
	BrCodeName    string            `json:"brCodeName"`
	Instruments   []AssetInstrument `json:"instruments"`
}

// AssetResponse from GetAssetBy.
type AssetResponse struct {
	Asset AssetFull `json:"asset"`
}

// Fundamental is the fundamental indicator set of one asset.
type Fundamental struct {
	AssetUID                     string  `json:"assetUid"`
	Currency                     string  `json:"currency"`
	MarketCapitalization         float64 `json:"marketCapitalization"`
	HighPriceLast52Weeks         float64 `json:"highPriceLast52Weeks"`
	LowPriceLast52Weeks          float64 `json:"lowPriceLast52Weeks"`
	AverageDailyVolumeLast10Days float64 `json:"averageDailyVolumeLast10Days"`
	AverageDailyVolumeLast4Weeks float64 `json:"averageDailyVolumeLast4Weeks"`
	Beta                         float64 `json:"beta"`
	FreeFloat                    float64 `json:"freeFloat"`
	ForwardAnnualDividendYield   float64 `json:"forwardAnnualDividendYield"`
	SharesOutstanding            float64 `json:"sharesOutstanding"`
	RevenueTTM                   float64 `json:"revenueTtm"`
	EBITDATTM                    float64 `json:"ebitdaTtm"`
	NetIncomeTTM                 float64 `json:"netIncomeTtm"`
	EPSTTM                       float64 `json:"epsTtm"`
	PERatioTTM                   float64 `json:"peRatioTtm"`
	PriceToSalesTTM              float64 `json:"priceToSalesTtm"`
	PriceToBookTTM               float64 `json:"priceToBookTtm"`
	TotalDebtToEquityMRQ         float64 `json:"totalDebtToEquityMrq"`
	ROE                          float64 `json:"roe"`
	DividendYieldDailyTTM        float64 `json:"dividendYieldDailyTtm"`
	DomicileIndicatorCode        string  `json:"domicileIndicatorCode"`
}

// GetAssetFundamentalsResponse from GetAssetFundamentals.
type GetAssetFundamentalsResponse struct {
	Fundamentals []Fundamental `json:"fundamentals"`
}

// Brand is an issuer brand. GetBrandBy returns it unwrapped.
type Brand struct {
	UID               string `json:"uid"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Info              string `json:"info"`
	Company           string `json:"company"`
	Sector            string `json:"sector"`
	CountryOfRisk     string `json:"countryOfRisk"`
	CountryOfRiskName string `json:"countryOfRiskName"`
}

// GetBrandsResponse from GetBrands.
type GetBrandsResponse struct {
	Brands []Brand  `json:"brands"`
	Paging PageInfo `json:"paging"`
}

// Country is one entry of the country reference list.
type Country struct {
	AlfaTwo   string `json:"alfaTwo"`
	AlfaThree string `json:"alfaThree"`
	Name      string `json:"name"`
	NameBrief string `json:"nameBrief"`
}

// GetCountriesResponse from GetCountries.
type GetCountriesResponse struct {
	Countries []Country `json:"countries"`
}

// TradingDay is one day of an exchange schedule.
type TradingDay struct {
	Date                    time.Time `json:"date"`
	IsTradingDay            bool      `json:"isTradingDay"`
	StartTime               time.Time `json:"startTime"`
	EndTime                 time.Time `json:"endTime"`
	OpeningAuctionStartTime time.Time `json:"openingAuctionStartTime"`
	ClosingAuctionEndTime   time.Time `json:"closingAuctionEndTime"`
	EveningStartTime        time.Time `json:"eveningStartTime"`
	EveningEndTime          time.Time `json:"eveningEndTime"`
	ClearingStartTime       time.Time `json:"clearingStartTime"`
	ClearingEndTime         time.Time `json:"clearingEndTime"`
}

// TradingSchedule is the schedule of one exchange.
type TradingSchedule struct {
	Exchange string       `json:"exchange"`
	Days     []TradingDay `json:"days"`
}

// TradingSchedulesResponse from TradingSchedules.
type TradingSchedulesResponse struct {
	Exchanges []TradingSchedule `json:"exchanges"`
}

// -----------------------------------------------------------------------------
// Favorites
// -----------------------------------------------------------------------------

// Favorite is one instrument in a favorites group.
type Favorite struct {
	FIGI                  string `json:"figi"`
	Ticker                string `json:"ticker"`
	ClassCode             string `json:"classCode"`
	ISIN                  string `json:"isin"`
	InstrumentType        string `json:"instrumentType"`
	InstrumentKind        string `json:"instrumentKind"`
	Name                  string `json:"name"`
	UID                   string `json:"uid"`
	OTCFlag               bool   `json:"otcFlag"`
	APITradeAvailableFlag bool   `json:"apiTradeAvailableFlag"`
}

// GetFavoritesResponse from GetFavorites.
type GetFavoritesResponse struct {
	FavoriteInstruments []Favorite `json:"favoriteInstruments"`
	GroupID             string     `json:"groupId"`
}

// EditFavoritesResponse from EditFavorites.
type EditFavoritesResponse struct {
	FavoriteInstruments []Favorite `json:"favoriteInstruments"`
	GroupID             string     `json:"groupId"`
}

// FavoriteGroup is a named favorites list.
type FavoriteGroup struct {
	GroupID            string `json:"groupId"`
	GroupName          string `json:"groupName"`
	Color              string `json:"color"`
	Size               int32  `json:"size"`
	ContainsInstrument bool   `json:"containsInstrument"`
}

// GetFavoriteGroupsResponse from GetFavoriteGroups.
type GetFavoriteGroupsResponse struct {
	Groups []FavoriteGroup `json:"groups"`
}

// CreateFavoriteGroupResponse from CreateFavoriteGroup.
type CreateFavoriteGroupResponse struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
}

// DeleteFavoriteGroupResponse from DeleteFavoriteGroup. The body is empty.
type DeleteFavoriteGroupResponse struct{}
