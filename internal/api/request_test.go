package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/tinvest-instruments/internal/model"
)

const testUID = "e6123145-9665-43e0-8413-cd61b8aa9b13"

func TestInvalidArgumentsNeverReachTransport(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newTestClient(t, srv.baseURL())
	ctx := context.Background()

	from := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		call func() error
	}{
		{"ticker without class code", func() error {
			_, err := c.ShareBy(ctx, model.Ticker("SBER", ""))
			return err
		}},
		{"class code without ticker", func() error {
			_, err := c.ShareBy(ctx, model.Ticker("", "TQBR"))
			return err
		}},
		{"class code on figi", func() error {
			_, err := c.ShareBy(ctx, model.Identifier{Type: model.IDTypeFIGI, ID: "BBG004730N88", ClassCode: "TQBR"})
			return err
		}},
		{"malformed uid", func() error {
			_, err := c.GetInstrumentBy(ctx, model.UID("not-a-uuid"))
			return err
		}},
		{"inverted period", func() error {
			_, err := c.GetBondCoupons(ctx, "BBG00T22WKV5", model.Period(from, to))
			return err
		}},
		{"empty instrument id", func() error {
			_, err := c.GetForecastBy(ctx, "  ")
			return err
		}},
		{"invalid status", func() error {
			_, err := c.Bonds(ctx, model.InstrumentStatus(99))
			return err
		}},
		{"empty asset list", func() error {
			_, err := c.GetAssetFundamentals(ctx, nil)
			return err
		}},
		{"malformed asset uid", func() error {
			_, err := c.GetAssetFundamentals(ctx, []string{testUID, "nope"})
			return err
		}},
		{"negative paging", func() error {
			_, err := c.GetBrands(ctx, model.Paging{Limit: -1})
			return err
		}},
		{"unspecified favorite action", func() error {
			_, err := c.EditFavorites(ctx, []model.FavoriteInstrument{{FIGI: "BBG004730N88"}}, model.FavoriteActionUnspecified)
			return err
		}},
		{"favorite with both ids", func() error {
			_, err := c.EditFavorites(ctx, []model.FavoriteInstrument{{FIGI: "BBG004730N88", InstrumentID: testUID}}, model.FavoriteAdd)
			return err
		}},
		{"unknown argument", func() error {
			_, err := c.Call(ctx, "Bonds", Args{"instrumentStatus": model.StatusBase, "limit": 10})
			return err
		}},
		{"missing required argument", func() error {
			_, err := c.Call(ctx, "GetAssetBy", Args{})
			return err
		}},
		{"nil required argument", func() error {
			_, err := c.Call(ctx, "BondBy", Args{"id": nil})
			return err
		}},
		{"type mismatch", func() error {
			_, err := c.Call(ctx, "BondBy", Args{"id": "BBG004730N88"})
			return err
		}},
		{"enum type mismatch", func() error {
			_, err := c.Call(ctx, "GetAssets", Args{"assetType": model.KindBond})
			return err
		}},
		{"unknown enum name", func() error {
			_, err := c.Call(ctx, "FindInstrument", Args{"query": "SBER", "instrumentKind": "crypto"})
			return err
		}},
		{"bool type mismatch", func() error {
			_, err := c.Call(ctx, "FindInstrument", Args{"query": "SBER", "apiTradeAvailableFlag": "yes"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, KindInvalidArgument, KindOf(err))
		})
	}

	assert.Zero(t, srv.hits.Load(), "invalid calls must not reach the network")
}

func TestValidationErrorsWrapModelSentinel(t *testing.T) {
	c := newTestClient(t, ProductionURL)

	_, err := c.BondBy(context.Background(), model.Ticker("SBER", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "BondBy")
	assert.Contains(t, err.Error(), "class code")
}

func TestUnknownOperation(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newTestClient(t, srv.baseURL())

	_, err := c.Call(context.Background(), "GetCandles", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "GetCandles", apiErr.Operation)
	assert.Zero(t, srv.hits.Load())
}

func TestJSONFormArguments(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, `{"instrument": {}, "groupId": "g1"}`)
	})
	c := newTestClient(t, srv.baseURL())
	ctx := context.Background()

	tests := []struct {
		name string
		op   string
		args Args
		want map[string]any
	}{
		{
			name: "identifier map",
			op:   "ShareBy",
			args: Args{"id": map[string]any{"ticker": "SBER", "classCode": "TQBR"}},
			want: map[string]any{"idType": "INSTRUMENT_ID_TYPE_TICKER", "classCode": "TQBR", "id": "SBER"},
		},
		{
			name: "status by short name",
			op:   "Shares",
			args: Args{"instrumentStatus": "all"},
			want: map[string]any{"instrumentStatus": "INSTRUMENT_STATUS_ALL"},
		},
		{
			name: "period map",
			op:   "GetDividends",
			args: Args{"instrumentId": "BBG004730N88", "period": map[string]any{"from": "2024-01-01T03:00:00+03:00"}},
			want: map[string]any{"instrumentId": "BBG004730N88", "from": "2024-01-01T00:00:00Z"},
		},
		{
			name: "paging map",
			op:   "GetBrands",
			args: Args{"paging": map[string]any{"limit": float64(50), "pageNumber": float64(2)}},
			want: map[string]any{"paging": map[string]any{"limit": float64(50), "pageNumber": float64(2)}},
		},
		{
			name: "uid list",
			op:   "GetAssetFundamentals",
			args: Args{"assets": []any{testUID}},
			want: map[string]any{"assets": []any{testUID}},
		},
		{
			name: "favorites list",
			op:   "CreateFavoriteGroup",
			args: Args{"name": "bonds", "instruments": []any{map[string]any{"figi": "BBG00T22WKV5"}}},
			want: map[string]any{"name": "bonds", "instruments": []any{map[string]any{"figi": "BBG00T22WKV5"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Call(ctx, tt.op, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.op, srv.lastOp())
			assert.Equal(t, tt.want, srv.lastBody())
		})
	}

	_, err := c.Call(ctx, "ShareBy", Args{"id": map[string]any{"figi": "BBG004730N88", "uid": testUID}})
	assert.ErrorIs(t, err, ErrInvalidArgument, "two identifier variants")
}

func TestResponseClassification(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		status   int
		body     string
		wantKind Kind
		check    func(t *testing.T, e *Error)
	}{
		{
			name:     "rejected with remote error",
			op:       "BondBy",
			status:   http.StatusNotFound,
			body:     `{"code": 5, "message": "50002", "description": "instrument not found"}`,
			wantKind: KindRequestRejected,
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, http.StatusNotFound, e.Status)
				assert.Equal(t, "5", e.Code)
				assert.Equal(t, "50002", e.Message)
				assert.Equal(t, "instrument not found", e.Description)
				assert.Equal(t, "trk-42", e.TrackingID)
				assert.False(t, e.IsRetryable())
			},
		},
		{
			name:     "rejected with plain body",
			op:       "BondBy",
			status:   http.StatusUnauthorized,
			body:     `token is invalid`,
			wantKind: KindRequestRejected,
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, "Unauthorized", e.Message)
				assert.Equal(t, "token is invalid", string(e.Body))
			},
		},
		{
			name:     "rate limited",
			op:       "Bonds",
			status:   http.StatusTooManyRequests,
			body:     `{"code": 8, "message": "80002"}`,
			wantKind: KindRequestRejected,
			check: func(t *testing.T, e *Error) {
				assert.True(t, e.IsRetryable())
			},
		},
		{
			name:     "server error",
			op:       "Bonds",
			status:   http.StatusInternalServerError,
			body:     `{"code": 13, "message": "70001", "description": "internal error"}`,
			wantKind: KindServiceUnavailable,
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, "70001", e.Message)
				assert.True(t, e.IsRetryable())
			},
		},
		{
			name:     "gateway unavailable",
			op:       "Bonds",
			status:   http.StatusServiceUnavailable,
			body:     `<html>down</html>`,
			wantKind: KindServiceUnavailable,
		},
		{name: "non-json body", op: "Bonds", status: http.StatusOK, body: `instruments`, wantKind: KindDecodeError},
		{name: "empty body", op: "Bonds", status: http.StatusOK, body: ``, wantKind: KindDecodeError},
		{name: "array body", op: "Bonds", status: http.StatusOK, body: `[]`, wantKind: KindDecodeError},
		{name: "null body", op: "Bonds", status: http.StatusOK, body: `null`, wantKind: KindDecodeError},
		{name: "missing required key", op: "BondBy", status: http.StatusOK, body: `{}`, wantKind: KindDecodeError},
		{name: "null required key", op: "BondBy", status: http.StatusOK, body: `{"instrument": null}`, wantKind: KindDecodeError},
		{name: "brand without uid", op: "GetBrandBy", status: http.StatusOK, body: `{"name": "Sber"}`, wantKind: KindDecodeError},
		{
			name:     "field type mismatch",
			op:       "BondBy",
			status:   http.StatusOK,
			body:     `{"instrument": {"lot": "one"}}`,
			wantKind: KindDecodeError,
			check: func(t *testing.T, e *Error) {
				assert.Error(t, e.Cause)
				assert.Equal(t, http.StatusOK, e.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
				w.Header().Set("x-tracking-id", "trk-42")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			c := newTestClient(t, srv.baseURL())

			args := Args{}
			switch tt.op {
			case "BondBy":
				args["id"] = model.FIGI("BBG004730N88")
			case "GetBrandBy":
				args["brandUid"] = testUID
			}

			v, err := c.Call(context.Background(), tt.op, args)
			require.Error(t, err)
			assert.Nil(t, v)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.wantKind, e.Kind)
			assert.Equal(t, tt.op, e.Operation)
			if tt.check != nil {
				tt.check(t, e)
			}
		})
	}
}

func TestEmptyListIsNotAnError(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newTestClient(t, srv.baseURL())

	resp, err := c.Bonds(context.Background(), model.StatusBase)
	require.NoError(t, err)
	assert.Empty(t, resp.Instruments)

	_, err = c.DeleteFavoriteGroup(context.Background(), "group-1")
	assert.NoError(t, err)
}

func TestDeprecatedOperationStillDispatches(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, `{"instruments": [{"figi": "FUTSI0624000", "direction": "OPTION_DIRECTION_CALL"}]}`)
	})
	c := newTestClient(t, srv.baseURL())

	resp, err := c.Options(context.Background(), model.StatusUnspecified) //nolint:staticcheck
	require.NoError(t, err)
	require.Len(t, resp.Instruments, 1)
	assert.Equal(t, "OPTION_DIRECTION_CALL", resp.Instruments[0].Direction)
}

func TestResultAs(t *testing.T) {
	v, err := ResultAs[BondsResponse](Result{Operation: "Bonds", Value: &BondsResponse{}})
	require.NoError(t, err)
	assert.NotNil(t, v)

	_, err = ResultAs[SharesResponse](Result{Operation: "Bonds", Value: &BondsResponse{}})
	assert.ErrorIs(t, err, ErrDecode)

	want := &Error{Kind: KindTimeout, Operation: "Bonds"}
	_, err = ResultAs[BondsResponse](Result{Operation: "Bonds", Err: want})
	assert.Same(t, want, err)
}
