package adapter

import (
	"bytes"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/result"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// maxErrorBody caps how much of a non-2xx streamed body is kept.
const maxErrorBody = 4 << 10

// toResult turns a resty round trip into a NetworkResult:
//   - err != nil (DNS, refused, timeout, cancelled) -> NetworkException;
//   - non-2xx status -> Failure with the raw body;
//   - 2xx with an undecodable body -> NetworkException wrapping ErrDecodingResponse;
//   - otherwise -> Success with the decoded body.
func toResult[T any](resp *resty.Response, err error) result.NetworkResult[T] {
	if err != nil {
		return result.NetworkException[T]{Cause: err}
	}

	if !resp.IsSuccess() {
		return result.Failure[T]{Code: resp.StatusCode(), Body: bytes.TrimSpace(resp.Body())}
	}

	var value T
	if body := bytes.TrimSpace(resp.Body()); len(body) > 0 {
		if err = json.Unmarshal(body, &value); err != nil {
			return result.NetworkException[T]{Cause: fmt.Errorf("%w: %w", ErrDecodingResponse, err)}
		}
	}

	return result.Success[T]{Value: value, Code: resp.StatusCode()}
}
