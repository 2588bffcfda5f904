package opponent

import (
	"context"

	"rps_arena/internal/logger"
)

// Client is the facade the rest of the app talks to. It tries the configured
// primary strategy and falls back to local generation on any failure, so
// Fetch always yields a playable move. Note the signature: no error return.
type Client struct {
	primary  Strategy
	fallback *FallbackStrategy
}

func NewClient(primary Strategy, fallback *FallbackStrategy) *Client {
	return &Client{primary: primary, fallback: fallback}
}

// Fetch returns the opponent move for one round. Remote trouble degrades to a
// locally generated move; the only trace is Source and a logged warning.
func (c *Client) Fetch(ctx context.Context) FetchResult {
	if c.primary != nil {
		res, err := c.primary.Fetch(ctx)
		if err == nil {
			fetchTotal.WithLabelValues(string(res.Source)).Inc()
			return res
		}
		logger.Warn("opponent fetch failed, using fallback", "error", err)
	}

	res, _ := c.fallback.Fetch(ctx)
	fetchTotal.WithLabelValues(string(res.Source)).Inc()
	return res
}
