package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/config"

	"github.com/shopspring/decimal"
)

// ExchangeRateClient fetches the current conversion rate from the base
// currency to the configured target currency. Checkout treats this as a hard
// dependency: no rate, no order.
type ExchangeRateClient interface {
	FetchRate(ctx context.Context) (*ExchangeRate, error)
}

type ExchangeRate struct {
	Rate     decimal.Decimal
	Currency string
}

type exchangeRateClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	accessKey  string
	source     string
	target     string
}

type liveQuotesResult struct {
	Success bool                       `json:"success"`
	Quotes  map[string]decimal.Decimal `json:"quotes"`
}

func NewExchangeRateClient(rateCfg *config.ExchangeRate) ExchangeRateClient {
	return &exchangeRateClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseApiURL: rateCfg.BaseApiURL,
		accessKey:  rateCfg.AccessKey,
		source:     rateCfg.Source,
		target:     rateCfg.Target,
	}
}

func (c *exchangeRateClientImpl) FetchRate(ctx context.Context) (*ExchangeRate, error) {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("source", c.source)
	params.Set("currencies", c.target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseApiURL+"/live?"+params.Encode(), nil)
	if err != nil {
		return nil, apperr.ErrRateUnavailable.Wrap(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.ErrRateUnavailable.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.ErrRateUnavailable.Wrap(
			fmt.Errorf("exchange rate api status %d", resp.StatusCode))
	}

	var result liveQuotesResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.ErrRateUnavailable.Wrap(fmt.Errorf("decode rate response: %w", err))
	}
	if !result.Success {
		return nil, apperr.ErrRateUnavailable.Wrap(fmt.Errorf("exchange rate api reported failure"))
	}

	rate, ok := result.Quotes[c.source+c.target]
	if !ok || !rate.IsPositive() {
		return nil, apperr.ErrRateUnavailable.Wrap(
			fmt.Errorf("no usable %s%s quote in response", c.source, c.target))
	}

	return &ExchangeRate{Rate: rate, Currency: c.target}, nil
}
