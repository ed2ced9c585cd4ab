package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Call invokes an operation by name. The result is a pointer to the
// operation's response shape (see Descriptor.NewResponse).
func (c *Client) Call(ctx context.Context, operation string, args Args) (any, error) {
	return c.dispatch(ctx, operation, args)
}

// invoke is the typed form of Call used by the per-operation methods.
func invoke[T any](ctx context.Context, c *Client, operation string, args Args) (*T, error) {
	v, err := c.dispatch(ctx, operation, args)
	if err != nil {
		return nil, err
	}
	out, ok := v.(*T)
	if !ok {
		return nil, &Error{
			Kind:      KindDecodeError,
			Operation: operation,
			Message:   fmt.Sprintf("response shape is %T, want %T", v, out),
		}
	}
	return out, nil
}

func (c *Client) dispatch(ctx context.Context, operation string, args Args) (any, error) {
	d, ok := catalogIndex[operation]
	if !ok {
		return nil, &Error{Kind: KindUnknownOperation, Operation: operation, Message: fmt.Sprintf("no operation named %q", operation)}
	}

	if d.Deprecated {
		c.logger.Warn("calling deprecated operation", "operation", d.Name)
	}

	env, err := buildEnvelope(d, args)
	if err != nil {
		return nil, err
	}

	raw, err := c.session.send(ctx, env)
	if err != nil {
		return nil, err
	}

	return decodeResponse(d, raw)
}

func buildEnvelope(d *Descriptor, args Args) (*envelope, error) {
	body, err := encodeArgs(d, args)
	if err != nil {
		return nil, &Error{Kind: KindInvalidArgument, Operation: d.Name, Cause: err}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidArgument, Operation: d.Name, Cause: fmt.Errorf("marshal request: %w", err)}
	}

	return &envelope{
		operation: d.Name,
		path:      d.Path(),
		body:      data,
		requestID: uuid.NewString(),
	}, nil
}

// remoteError is the error body the gateway returns with 4xx/5xx statuses.
type remoteError struct {
	Code        any    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// decodeResponse classifies a raw reply and decodes a 2xx body into the
// descriptor's response shape.
func decodeResponse(d *Descriptor, raw *rawResponse) (any, error) {
	switch {
	case raw.status >= 200 && raw.status < 300:
		return decodeSuccess(d, raw)
	case raw.status >= 400 && raw.status < 500:
		return nil, remoteFailure(d, raw, KindRequestRejected)
	case raw.status >= 500:
		return nil, remoteFailure(d, raw, KindServiceUnavailable)
	default:
		return nil, &Error{
			Kind:       KindDecodeError,
			Operation:  d.Name,
			Status:     raw.status,
			Message:    fmt.Sprintf("unexpected status %s", http.StatusText(raw.status)),
			TrackingID: raw.trackingID,
			Body:       truncate(raw.body),
		}
	}
}

func decodeSuccess(d *Descriptor, raw *rawResponse) (any, error) {
	fail := func(msg string, cause error) error {
		return &Error{
			Kind:       KindDecodeError,
			Operation:  d.Name,
			Status:     raw.status,
			Message:    msg,
			TrackingID: raw.trackingID,
			Body:       truncate(raw.body),
			Cause:      cause,
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw.body, &fields); err != nil {
		return nil, fail("response body is not a JSON object", err)
	}
	if fields == nil {
		return nil, fail("response body is null", nil)
	}
	for _, key := range d.Keys {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, fail(fmt.Sprintf("response is missing required key %q", key), nil)
		}
	}

	out := d.NewResponse()
	if err := json.Unmarshal(raw.body, out); err != nil {
		return nil, fail("response does not match the operation shape", err)
	}
	return out, nil
}

func remoteFailure(d *Descriptor, raw *rawResponse, kind Kind) error {
	e := &Error{
		Kind:       kind,
		Operation:  d.Name,
		Status:     raw.status,
		TrackingID: raw.trackingID,
		Body:       truncate(raw.body),
	}

	var re remoteError
	if err := json.Unmarshal(raw.body, &re); err == nil && (re.Code != nil || re.Message != "") {
		if re.Code != nil {
			e.Code = fmt.Sprint(re.Code)
		}
		e.Message = re.Message
		e.Description = re.Description
	} else {
		e.Message = http.StatusText(raw.status)
	}
	return e
}

func truncate(body []byte) []byte {
	if len(body) <= maxErrorBody {
		return body
	}
	return body[:maxErrorBody]
}

// ResultAs returns the typed value of a batch result.
func ResultAs[T any](r Result) (*T, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	v, ok := r.Value.(*T)
	if !ok {
		return nil, &Error{
			Kind:      KindDecodeError,
			Operation: r.Operation,
			Message:   fmt.Sprintf("result is %T, want %T", r.Value, v),
		}
	}
	return v, nil
}
