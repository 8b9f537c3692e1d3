package utils

import (
	"biotrunk/config"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key"

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignatureValid(t *testing.T) {
	signature := signPayload("order_123", "pay_456", testSecret)

	valid, err := VerifyRazorpaySignature("order_123", "pay_456", signature, testSecret)
	require.NoError(t, err)
	assert.True(t, valid)

	// Deterministic: same inputs, same result
	again, err := VerifyRazorpaySignature("order_123", "pay_456", signature, testSecret)
	require.NoError(t, err)
	assert.True(t, again)
}

func TestVerifyRazorpaySignatureTamperedCharacter(t *testing.T) {
	signature := signPayload("order_123", "pay_456", testSecret)

	// Flipping any single character invalidates the signature
	tampered := []byte(signature)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	valid, err := VerifyRazorpaySignature("order_123", "pay_456", string(tampered), testSecret)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyRazorpaySignatureWrongSecret(t *testing.T) {
	signature := signPayload("order_123", "pay_456", "some_other_secret")

	valid, err := VerifyRazorpaySignature("order_123", "pay_456", signature, testSecret)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyRazorpaySignatureMissingSecret(t *testing.T) {
	signature := signPayload("order_123", "pay_456", testSecret)

	_, err := VerifyRazorpaySignature("order_123", "pay_456", signature, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestVerifyRazorpaySignatureMissingFields(t *testing.T) {
	cases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
	}{
		{"missing order id", "", "pay_456", "sig"},
		{"missing payment id", "order_123", "", "sig"},
		{"missing signature", "order_123", "pay_456", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VerifyRazorpaySignature(tc.orderID, tc.paymentID, tc.signature, testSecret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestVerifyRazorpaySignatureHostileInput(t *testing.T) {
	// Ids are opaque strings, anything non-empty must be handled without panics
	valid, err := VerifyRazorpaySignature(`"; DROP TABLE enrollments; --`, "pay|456", "not-even-hex", testSecret)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestToPaise(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{499.00, 49900},
		{2999, 299900},
		{123.45, 12345},
		{0, 0},
		{0.01, 1},
		{10.999, 1100}, // rounds half away from zero
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToPaise(tc.amount), "amount %v", tc.amount)
	}
}

// gatewayStub serves the orders endpoint with a canned status and body
func gatewayStub(t *testing.T, status int, body string) (*httptest.Server, *RazorpayClient) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		_, _, ok := r.BasicAuth()
		assert.True(t, ok, "order requests carry basic auth")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))

	client := &RazorpayClient{
		keyID: "rzp_test_abcdefghij",
		http: resty.New().
			SetBaseURL(srv.URL).
			SetBasicAuth("rzp_test_abcdefghij", testSecret),
	}
	return srv, client
}

func withGatewayConfig(t *testing.T) {
	t.Helper()
	orig := config.AppConfig
	t.Cleanup(func() { config.AppConfig = orig })
	config.AppConfig = &config.Config{Env: "test", RazorpayKeyID: "rzp_test_abcdefghij"}
}

func TestCreateOrderSuccess(t *testing.T) {
	withGatewayConfig(t)

	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"order_stub_1","amount":299900,"currency":"INR","receipt":"receipt_1","status":"created"}`)
	}))
	defer srv.Close()

	client := &RazorpayClient{
		keyID: "rzp_test_abcdefghij",
		http:  resty.New().SetBaseURL(srv.URL).SetBasicAuth("rzp_test_abcdefghij", testSecret),
	}

	order, err := client.CreateOrder(2999, "INR")
	require.NoError(t, err)
	assert.Equal(t, "order_stub_1", order.ID)
	assert.EqualValues(t, 299900, order.Amount)
	assert.Equal(t, "created", order.Status)

	// The gateway gets integral minor units and a per-attempt receipt token
	assert.EqualValues(t, 299900, gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Regexp(t, `^receipt_\d+$`, gotBody["receipt"])
}

func TestCreateOrderAuthRejected(t *testing.T) {
	withGatewayConfig(t)

	srv, client := gatewayStub(t, http.StatusUnauthorized,
		`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`)
	defer srv.Close()

	_, err := client.CreateOrder(2999, "INR")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGatewayAuth))
	assert.False(t, errors.Is(err, ErrGatewayRequest))
}

func TestCreateOrderBadRequest(t *testing.T) {
	withGatewayConfig(t)

	srv, client := gatewayStub(t, http.StatusBadRequest,
		`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least 100"}}`)
	defer srv.Close()

	_, err := client.CreateOrder(0.001, "INR")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGatewayRequest))
	assert.False(t, errors.Is(err, ErrGatewayAuth))
}

func TestCreateOrderServerError(t *testing.T) {
	withGatewayConfig(t)

	srv, client := gatewayStub(t, http.StatusInternalServerError, `{"error":{"code":"SERVER_ERROR"}}`)
	defer srv.Close()

	_, err := client.CreateOrder(2999, "INR")
	require.Error(t, err)
	// Unclassified gateway failures stay generic
	assert.False(t, errors.Is(err, ErrGatewayAuth))
	assert.False(t, errors.Is(err, ErrGatewayRequest))
	assert.Contains(t, err.Error(), "500")
}

func TestRazorpayModeDetection(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig }()

	config.AppConfig = &config.Config{RazorpayKeyID: "rzp_live_HZYsCB58PuDIMs"}
	assert.Equal(t, "LIVE", RazorpayMode())

	config.AppConfig = &config.Config{RazorpayKeyID: "rzp_test_HZYsCB58PuDIMs"}
	assert.Equal(t, "TEST", RazorpayMode())

	config.AppConfig = &config.Config{RazorpayKeyID: "something_else"}
	assert.Equal(t, "UNKNOWN", RazorpayMode())

	config.AppConfig = &config.Config{}
	assert.Equal(t, "UNKNOWN", RazorpayMode())
}

func TestRazorpayKeyPreviewMasksKey(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig }()

	config.AppConfig = &config.Config{RazorpayKeyID: "rzp_test_HZYsCB58PuDIMs"}
	preview := RazorpayKeyPreview()
	assert.Equal(t, "rzp_test_H...", preview)
	assert.NotContains(t, preview, "ZYsCB58PuDIMs")

	config.AppConfig = &config.Config{}
	assert.Equal(t, "NOT SET", RazorpayKeyPreview())
}
