package utils

import (
	"biotrunk/config"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

// RazorpayClient talks to the Razorpay orders API. One instance is shared
// process-wide, lazily constructed on first use.
type RazorpayClient struct {
	keyID string
	http  *resty.Client
}

// RazorpayOrder is the gateway-side record of an intended payment
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

var (
	razorpayMu     sync.Mutex
	razorpayClient *RazorpayClient
)

// GetRazorpayClient returns the shared gateway client, constructing it on the
// first call. Missing credentials are reported at first use, not at boot, and
// are not cached so a restart-free env fix still needs no special handling.
func GetRazorpayClient() (*RazorpayClient, error) {
	razorpayMu.Lock()
	defer razorpayMu.Unlock()

	if razorpayClient != nil {
		return razorpayClient, nil
	}

	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret

	if keyID == "" || keySecret == "" {
		log.Println("[RAZORPAY] Missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
		return nil, fmt.Errorf("%w: RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET", ErrConfiguration)
	}

	client := resty.New().
		SetBaseURL(razorpayBaseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(20 * time.Second)

	razorpayClient = &RazorpayClient{keyID: keyID, http: client}

	log.Printf("[RAZORPAY] Client initialized, mode=%s key=%s", RazorpayMode(), RazorpayKeyPreview())
	return razorpayClient, nil
}

// CreateOrder creates a gateway order for the given amount in major currency
// units. The amount is converted to minor units with math.Round, i.e. half
// rounds away from zero; the gateway only accepts integral minor units.
func (r *RazorpayClient) CreateOrder(amount float64, currency string) (*RazorpayOrder, error) {
	orderAmount := ToPaise(amount)

	log.Printf("[RAZORPAY] Creating order: amount=%.2f paise=%d currency=%s", amount, orderAmount, currency)

	order := new(RazorpayOrder)
	resp, err := r.http.R().
		SetBody(map[string]interface{}{
			"amount":   orderAmount,
			"currency": currency,
			// unique per attempt so gateway-side idempotency never collides on retry
			"receipt": fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
			"notes": map[string]string{
				"source":      "biotrunk",
				"environment": config.AppConfig.Env,
			},
		}).
		SetResult(order).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay order request: %w", err)
	}

	switch {
	case resp.StatusCode() == 401:
		log.Printf("[RAZORPAY] Auth rejected for key %s", RazorpayKeyPreview())
		return nil, fmt.Errorf("%w: %s", ErrGatewayAuth, resp.String())
	case resp.StatusCode() == 400:
		return nil, fmt.Errorf("%w: %s", ErrGatewayRequest, resp.String())
	case resp.StatusCode() != 200:
		return nil, fmt.Errorf("razorpay order failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	log.Printf("[RAZORPAY] Order created: id=%s amount=%d status=%s", order.ID, order.Amount, order.Status)
	return order, nil
}

// ToPaise converts a major-unit amount to integral minor units, rounding half
// away from zero (499.00 -> 49900).
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// VerifyRazorpaySignature checks a payment callback against the shared secret:
// hex(HMAC-SHA256(secret, orderID + "|" + paymentID)) must equal the supplied
// signature. A mismatch is a normal negative result, not an error. All three
// ids are treated as untrusted opaque strings.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) (bool, error) {
	if secret == "" {
		return false, fmt.Errorf("%w: RAZORPAY_KEY_SECRET", ErrConfiguration)
	}
	if orderID == "" || paymentID == "" || signature == "" {
		return false, fmt.Errorf("%w: order id, payment id and signature are required", ErrValidation)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// RazorpayMode reports LIVE, TEST or UNKNOWN from the marker embedded in the
// key id. Monitoring signal only, never a behavioral gate.
func RazorpayMode() string {
	keyID := config.AppConfig.RazorpayKeyID
	switch {
	case strings.Contains(keyID, "_live_"):
		return "LIVE"
	case strings.Contains(keyID, "_test_"):
		return "TEST"
	default:
		return "UNKNOWN"
	}
}

// RazorpayKeyPreview returns a masked key id safe to log
func RazorpayKeyPreview() string {
	keyID := config.AppConfig.RazorpayKeyID
	if keyID == "" {
		return "NOT SET"
	}
	if len(keyID) <= 10 {
		return keyID[:1] + "..."
	}
	return keyID[:10] + "..."
}
