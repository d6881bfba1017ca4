package result

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describe(r NetworkResult[int]) string {
	return Fold(r,
		func(v int, code int) string { return "success " + strconv.Itoa(v) + " " + strconv.Itoa(code) },
		func(code int, body []byte) string { return "failure " + strconv.Itoa(code) + " " + string(body) },
		func(cause error) string { return "exception " + cause.Error() },
	)
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   NetworkResult[int]
		want string
	}{
		{name: "success", in: Success[int]{Value: 7, Code: http.StatusCreated}, want: "success 7 201"},
		{name: "failure", in: Failure[int]{Code: http.StatusConflict, Body: []byte("dup")}, want: "failure 409 dup"},
		{name: "exception", in: NetworkException[int]{Cause: errors.New("timeout")}, want: "exception timeout"},
		{name: "nil result", in: nil, want: "exception no network result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.in))
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, OK(1).StatusCode())
	assert.Equal(t, http.StatusNotFound, Failure[int]{Code: http.StatusNotFound}.StatusCode())
	assert.Equal(t, 0, NetworkException[int]{Cause: errors.New("x")}.StatusCode())
}

func TestUnwrapped(t *testing.T) {
	v, err := Unwrapped(OK(5))
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = Unwrapped[int](Failure[int]{Code: http.StatusBadRequest, Body: []byte("bad")})
	var failure Failure[int]
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusBadRequest, failure.Code)
	assert.Contains(t, err.Error(), "bad")

	cause := errors.New("connection refused")
	_, err = Unwrapped[int](NetworkException[int]{Cause: cause})
	assert.ErrorIs(t, err, cause)
}

func TestVariantsAreTypedOnValue(t *testing.T) {
	_, ok := any(Success[string]{Value: "not an int", Code: http.StatusOK}).(NetworkResult[int])
	assert.False(t, ok, "a Success[string] must not pass as NetworkResult[int]")

	_, ok = any(Failure[string]{Code: http.StatusBadRequest}).(NetworkResult[int])
	assert.False(t, ok)

	_, ok = any(Success[int]{Value: 1}).(NetworkResult[int])
	assert.True(t, ok)

	v, err := Unwrapped(Success[int]{Value: 3, Code: http.StatusCreated})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = Unwrapped[int](nil)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestMapAndDiscard(t *testing.T) {
	mapped := Map(OK(21), func(v int) string { return strconv.Itoa(v * 2) })
	s, ok := mapped.(Success[string])
	require.True(t, ok)
	assert.Equal(t, "42", s.Value)

	failed := Map[int, string](Failure[int]{Code: http.StatusInternalServerError}, strconv.Itoa)
	assert.True(t, Failed(failed))
	assert.Equal(t, http.StatusInternalServerError, failed.StatusCode())

	discarded := Discard[int](NetworkException[int]{Cause: errors.New("eof")})
	_, isException := discarded.(NetworkException[struct{}])
	assert.True(t, isException)
	assert.False(t, Failed(Discard(OK(1))))
}
