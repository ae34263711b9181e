package renewly

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

// WebhookSignatureHeader carries the hex-encoded HMAC-SHA256 of the webhook
// body, keyed with the store's webhook secret.
const WebhookSignatureHeader = "X-Renewly-Hmac-Sha256"

// VerifyWebhookSignature checks that signature is the HMAC-SHA256 of body
// under secret. Comparison is constant-time.
func VerifyWebhookSignature(secret string, body []byte, signature string) (bool, error) {
	if secret == "" {
		return false, ErrWebhookSecretUnset
	}

	if signature == "" {
		return false, ErrMissingSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// VerifyWebhookRequest reads the signature from the request headers and
// verifies it against body. The request body must already have been read by
// the caller; this function does not consume r.Body.
func VerifyWebhookRequest(secret string, r *http.Request, body []byte) (bool, error) {
	return VerifyWebhookSignature(secret, body, r.Header.Get(WebhookSignatureHeader))
}
