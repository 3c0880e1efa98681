package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lokesh-18a/artiflex/internal/client"
	"github.com/lokesh-18a/artiflex/internal/logging"
)

// CurrencyService supplies USD-based conversion rates for display prices.
// On any upstream failure it falls back to {"USD": 1.0}.
type CurrencyService interface {
	Rates(ctx context.Context) map[string]float64
	Convert(cents int64, rate float64) string
}

type currencyServiceImpl struct {
	rates client.RatesClient
}

func NewCurrencyService(rates client.RatesClient) CurrencyService {
	return &currencyServiceImpl{
		rates: rates,
	}
}

func (s *currencyServiceImpl) Rates(ctx context.Context) map[string]float64 {
	rates, err := s.rates.LatestRates(ctx)
	if err != nil {
		logging.FromCtx(ctx).Warn("fetch currency rates failed", "error", err)
		return map[string]float64{"USD": 1.0}
	}
	return rates
}

// Convert turns USD cents into a display amount in the target currency,
// rounded to two places.
func (s *currencyServiceImpl) Convert(cents int64, rate float64) string {
	amount := decimal.NewFromInt(cents).
		Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromFloat(rate))
	return amount.StringFixed(2)
}
