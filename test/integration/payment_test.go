package integration_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signWebhook plays the gateway's role: HMAC-SHA256 over
// "gatewayID|status|amount" with the shared secret from the test env.
func signWebhook(gatewayID, status string, amount float64) string {
	payload := fmt.Sprintf("%s|%s|%.2f", gatewayID, status, amount)
	mac := hmac.New(sha256.New, []byte("test-webhook-secret"))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentPurchaseFlow(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{Tokens: 10000})
	gatewayID := fmt.Sprintf("pay_flow_%d", time.Now().UnixNano())

	// 1. Record the pending payment.
	record := map[string]interface{}{
		"gateway_id":   gatewayID,
		"amount":       499.00,
		"tokens_added": 500,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/payments", token, record)
	require.Equal(t, http.StatusCreated, res.StatusCode, "unexpected response: "+bodyStr)

	var recorded struct {
		Status   string `json:"status"`
		Currency string `json:"currency"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &recorded))
	assert.Equal(t, "PENDING", recorded.Status)
	assert.Equal(t, "INR", recorded.Currency)

	// 2. Gateway confirms via webhook. No bearer token on this route.
	webhook := map[string]interface{}{
		"gateway_id": gatewayID,
		"status":     "COMPLETED",
		"amount":     499.00,
		"signature":  signWebhook(gatewayID, "COMPLETED", 499.00),
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/payments/webhook", "", webhook)
	require.Equal(t, http.StatusOK, res.StatusCode, "unexpected response: "+bodyStr)

	assert.Equal(t, 10500, helpers.Balance(t, ts.DB, user.ID))

	// 3. Re-delivered webhook: 200, but no double credit.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/payments/webhook", "", webhook)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 10500, helpers.Balance(t, ts.DB, user.ID))

	// 4. Status endpoint reflects the settlement.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/payments/"+gatewayID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var settled struct {
		Status    string  `json:"status"`
		SettledAt *string `json:"settled_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &settled))
	assert.Equal(t, "COMPLETED", settled.Status)
	assert.NotNil(t, settled.SettledAt)
}

func TestPaymentWebhookRejectsForgedSignature(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{Tokens: 10000})
	gatewayID := fmt.Sprintf("pay_forged_%d", time.Now().UnixNano())

	record := map[string]interface{}{"gateway_id": gatewayID, "amount": 100.00, "tokens_added": 100}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/payments", token, record)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	webhook := map[string]interface{}{
		"gateway_id": gatewayID,
		"status":     "COMPLETED",
		"amount":     100.00,
		"signature":  "deadbeef",
	}
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/payments/webhook", "", webhook)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, 10000, helpers.Balance(t, ts.DB, user.ID))
}

func TestPaymentFailedSettlement(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{Tokens: 10000})
	gatewayID := fmt.Sprintf("pay_failed_%d", time.Now().UnixNano())

	record := map[string]interface{}{"gateway_id": gatewayID, "amount": 100.00, "tokens_added": 100}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/payments", token, record)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	webhook := map[string]interface{}{
		"gateway_id": gatewayID,
		"status":     "FAILED",
		"amount":     100.00,
		"signature":  signWebhook(gatewayID, "FAILED", 100.00),
	}
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/payments/webhook", "", webhook)
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, 10000, helpers.Balance(t, ts.DB, user.ID), "FAILED settlement must not credit tokens")
}

func TestPaymentStatusHiddenFromOtherUsers(t *testing.T) {
	ts := getServer(t)

	ownerToken, _ := helpers.CreateAndLoginUser(t, ts.DB, &models.User{})
	otherToken, _ := helpers.CreateAndLoginUser(t, ts.DB, &models.User{})
	gatewayID := fmt.Sprintf("pay_priv_%d", time.Now().UnixNano())

	record := map[string]interface{}{"gateway_id": gatewayID, "amount": 100.00, "tokens_added": 100}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/payments", ownerToken, record)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/payments/"+gatewayID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
