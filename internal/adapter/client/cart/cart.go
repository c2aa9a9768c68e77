package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/core/domain"
	"go.uber.org/zap"
)

// Client talks to the external cart service. The cart validates items and
// pricing on its side; checkout only consumes the snapshot.
type Client struct {
	host   string
	httpc  *http.Client
	logger *zap.Logger
}

func NewClient(cfg *config.Cart, log *zap.Logger) (*Client, error) {
	return &Client{
		host:   cfg.HostString,
		httpc:  &http.Client{Timeout: 5 * time.Second},
		logger: log,
	}, nil
}

func (c *Client) Get(ctx context.Context, userID uint64) (*domain.CartSnapshot, error) {
	requestStr := "http://" + c.host + "/api/cart/" + strconv.FormatUint(userID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrDataNotFound
		}
		c.logger.Error("unexpected status from cart service",
			zap.Uint64("user", userID), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var snapshot domain.CartSnapshot
	err = json.NewDecoder(resp.Body).Decode(&snapshot)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &snapshot, nil
}

func (c *Client) Clear(ctx context.Context, userID uint64) error {
	requestStr := "http://" + c.host + "/api/cart/" + strconv.FormatUint(userID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, requestStr, http.NoBody)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}
	return nil
}
