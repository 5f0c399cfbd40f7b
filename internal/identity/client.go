// Package identity talks to the external identity provider.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
)

// ProviderUser 身份提供商侧的用户数据
type ProviderUser struct {
	ID             string  `json:"id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	EmailAddresses []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	PrimaryEmailAddressId string                 `json:"primary_email_address_id"`
	PublicMetadata        map[string]interface{} `json:"public_metadata"`
}

// PrimaryEmail 返回主邮箱, 没有时返回第一个邮箱
func (user *ProviderUser) PrimaryEmail() string {
	for _, address := range user.EmailAddresses {
		if address.ID == user.PrimaryEmailAddressId {
			return address.EmailAddress
		}
	}
	if len(user.EmailAddresses) > 0 {
		return user.EmailAddresses[0].EmailAddress
	}
	return ""
}

type Client struct {
	logger     log.LoggerInterface
	config     *config.IdentityConfig
	httpClient *http.Client
}

func NewClient(logger log.LoggerInterface, config *config.IdentityConfig) *Client {
	return &Client{
		logger: logger,
		config: config,
		httpClient: &http.Client{
			Timeout: config.RequestDuration,
		},
	}
}

// Enabled 是否配置了访问令牌, 未配置时所有出站调用都跳过
func (c *Client) Enabled() bool {
	return c.config.ApiToken != ""
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseUrl+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.ApiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity provider returned %s", resp.Status)
	}
	return content, nil
}

// GetUser 获取身份提供商侧的用户数据
func (c *Client) GetUser(ctx context.Context, providerId string) (*ProviderUser, error) {
	content, err := c.doRequest(ctx, http.MethodGet, "/users/"+providerId, nil)
	if err != nil {
		return nil, err
	}
	user := &ProviderUser{}
	if err := json.Unmarshal(content, user); err != nil {
		return nil, fmt.Errorf("unmarshal provider user: %w", err)
	}
	return user, nil
}

// UpdateUserMetadata 回写角色等公开元数据, 失败只记录日志
func (c *Client) UpdateUserMetadata(ctx context.Context, providerId string, metadata map[string]interface{}) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.doRequest(ctx, http.MethodPatch, "/users/"+providerId+"/metadata", map[string]interface{}{
		"public_metadata": metadata,
	})
	if err != nil {
		c.logger.WarnF("Failed to push metadata for %s: %v", providerId, err)
	}
	return err
}
