package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func signPayload(t *testing.T, secret, id, timestamp string, payload []byte) string {
	t.Helper()
	key, err := base64.StdEncoding.DecodeString(secret[len("whsec_"):])
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(fmt.Sprintf("%s.%s.%s", id, timestamp, payload)))
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func newTestVerifier(t *testing.T, now time.Time) *WebhookVerifier {
	t.Helper()
	verifier, err := NewWebhookVerifier(testSecret)
	if err != nil {
		t.Fatalf("NewWebhookVerifier: %v", err)
	}
	verifier.now = func() time.Time { return now }
	return verifier
}

func TestVerifyValidSignature(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	verifier := newTestVerifier(t, now)

	payload := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	id := "msg_2Kx7PQn"
	timestamp := fmt.Sprintf("%d", now.Unix())
	signature := signPayload(t, testSecret, id, timestamp, payload)

	if err := verifier.Verify(id, timestamp, signature, payload); err != nil {
		t.Errorf("Verify() = %v; expected nil", err)
	}
}

func TestVerifyMultipleSignatures(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	verifier := newTestVerifier(t, now)

	payload := []byte(`{"type":"user.updated"}`)
	id := "msg_9aBcDeF"
	timestamp := fmt.Sprintf("%d", now.Unix())
	valid := signPayload(t, testSecret, id, timestamp, payload)
	signatures := "v1,bm90IGEgcmVhbCBzaWduYXR1cmU= " + valid

	if err := verifier.Verify(id, timestamp, signatures, payload); err != nil {
		t.Errorf("Verify() with multiple signatures = %v; expected nil", err)
	}
}

func TestVerifyRejections(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	verifier := newTestVerifier(t, now)

	payload := []byte(`{"type":"user.deleted"}`)
	id := "msg_3FgHiJk"
	timestamp := fmt.Sprintf("%d", now.Unix())
	valid := signPayload(t, testSecret, id, timestamp, payload)

	tests := []struct {
		name      string
		id        string
		timestamp string
		signature string
		payload   []byte
		expected  error
	}{
		{"missing id", "", timestamp, valid, payload, ErrMissingHeaders},
		{"missing timestamp", id, "", valid, payload, ErrMissingHeaders},
		{"missing signature", id, timestamp, "", payload, ErrMissingHeaders},
		{"garbage timestamp", id, "not-a-number", valid, payload, ErrTimestampExpired},
		{"stale timestamp", id, fmt.Sprintf("%d", now.Add(-10*time.Minute).Unix()), valid, payload, ErrTimestampExpired},
		{"future timestamp", id, fmt.Sprintf("%d", now.Add(10*time.Minute).Unix()), valid, payload, ErrTimestampExpired},
		{"tampered payload", id, timestamp, valid, []byte(`{"type":"user.created"}`), ErrNoMatchSignature},
		{"unversioned signature", id, timestamp, "v0,abcdef", payload, ErrNoMatchSignature},
	}

	pass := 0
	fail := 0
	for _, test := range tests {
		err := verifier.Verify(test.id, test.timestamp, test.signature, test.payload)
		if !errors.Is(err, test.expected) {
			fail++
			t.Errorf("Verify(%s) = %v; expected %v", test.name, err, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestVerifyRejections: %d pass, %d fail", pass, fail)
}

func TestNewWebhookVerifierBadSecret(t *testing.T) {
	if _, err := NewWebhookVerifier("whsec_!!!not-base64!!!"); err == nil {
		t.Error("NewWebhookVerifier() with invalid secret; expected error")
	}
}
