package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lokesh-18a/artiflex/internal/config"
	"github.com/lokesh-18a/artiflex/internal/model"
)

type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, serviceBaseURL string, items []*model.CartItem) (string, error)
}

type stripeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: stripeCfg.BaseApiURL,
		secretKey:  stripeCfg.SecretKey,
	}
}

type stripeSessionResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession builds a hosted Checkout Session from the cart and
// returns its redirect URL.
func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, serviceBaseURL string, items []*model.CartItem) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", serviceBaseURL+"/api/customer/payment/success")
	form.Set("cancel_url", serviceBaseURL+"/api/customer/cart")
	form.Add("payment_method_types[0]", "card")

	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][product_data][name]", item.Product.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.Product.PriceCents, 10))
		form.Set(prefix+"[quantity]", strconv.FormatInt(int64(item.Quantity), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/checkout/sessions",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(b))
	}

	var result stripeSessionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode stripe response: %w", err)
	}

	if result.URL == "" {
		return "", fmt.Errorf("stripe session %s has no redirect url", result.ID)
	}

	return result.URL, nil
}
