package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateClientFor(srv *httptest.Server) ExchangeRateClient {
	return NewExchangeRateClient(&config.ExchangeRate{
		BaseApiURL: srv.URL,
		AccessKey:  "test-key",
		Source:     "USD",
		Target:     "KRW",
	})
}

func TestFetchRate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "USD", r.URL.Query().Get("source"))
		assert.Equal(t, "KRW", r.URL.Query().Get("currencies"))
		w.Write([]byte(`{"success":true,"quotes":{"USDKRW":1301.5}}`))
	}))
	defer srv.Close()

	rate, err := rateClientFor(srv).FetchRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "KRW", rate.Currency)
	assert.Equal(t, "1301.5", rate.Rate.String())
}

func TestFetchRate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := rateClientFor(srv).FetchRate(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrRateUnavailable))
}

func TestFetchRate_ReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":{"code":104}}`))
	}))
	defer srv.Close()

	_, err := rateClientFor(srv).FetchRate(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrRateUnavailable))
}

func TestFetchRate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := rateClientFor(srv).FetchRate(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrRateUnavailable))
}

func TestFetchRate_MissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"quotes":{"USDJPY":147.2}}`))
	}))
	defer srv.Close()

	_, err := rateClientFor(srv).FetchRate(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrRateUnavailable))
}

func TestFetchRate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := rateClientFor(srv).FetchRate(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrRateUnavailable))
}
