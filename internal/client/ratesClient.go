package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lokesh-18a/artiflex/internal/config"
)

type RatesClient interface {
	LatestRates(ctx context.Context) (map[string]float64, error)
}

type ratesClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewRatesClient(ratesCfg *config.Exchange) RatesClient {
	return &ratesClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseApiURL: ratesCfg.BaseApiURL,
		apiKey:     ratesCfg.APIKey,
	}
}

type ratesResult struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// LatestRates returns USD-based conversion multipliers.
func (c *ratesClientImpl) LatestRates(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/v6/%s/latest/USD", c.baseApiURL, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("exchangerate error %d: %s", resp.StatusCode, string(b))
	}

	var result ratesResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode rates response: %w", err)
	}

	if result.Result != "success" || len(result.ConversionRates) == 0 {
		return nil, fmt.Errorf("exchangerate result %q", result.Result)
	}

	return result.ConversionRates, nil
}
