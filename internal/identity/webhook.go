package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flightlog-collective/skylog/internal/utils"
)

const (
	webhookSecretPrefix = "whsec_"
	signaturePrefix     = "v1,"
	// 时间戳容忍窗口, 超过视为重放
	timestampTolerance = 5 * time.Minute
)

var (
	ErrMissingHeaders   = errors.New("missing webhook headers")
	ErrTimestampExpired = errors.New("webhook timestamp outside tolerance")
	ErrNoMatchSignature = errors.New("no matching signature found")
)

// WebhookVerifier 校验身份提供商回调的签名
type WebhookVerifier struct {
	key []byte
	now func() time.Time
}

func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, webhookSecretPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode webhook secret: %w", err)
	}
	return &WebhookVerifier{key: key, now: time.Now}, nil
}

// Verify 校验签名, headers为webhook-id, webhook-timestamp, webhook-signature的值
func (v *WebhookVerifier) Verify(id, timestamp, signatures string, payload []byte) error {
	if id == "" || timestamp == "" || signatures == "" {
		return ErrMissingHeaders
	}

	unix := utils.StrToInt(timestamp, -1)
	if unix < 0 {
		return ErrTimestampExpired
	}
	sent := time.Unix(int64(unix), 0)
	now := v.now()
	if sent.Before(now.Add(-timestampTolerance)) || sent.After(now.Add(timestampTolerance)) {
		return ErrTimestampExpired
	}

	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(fmt.Sprintf("%s.%s.%s", id, timestamp, payload)))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// 签名头可能包含多个空格分隔的版本化签名
	for _, signature := range strings.Split(signatures, " ") {
		if !strings.HasPrefix(signature, signaturePrefix) {
			continue
		}
		candidate := strings.TrimPrefix(signature, signaturePrefix)
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1 {
			return nil
		}
	}
	return ErrNoMatchSignature
}
