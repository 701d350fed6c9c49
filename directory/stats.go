package directory

import (
	"context"
	"fmt"
)

// Stats fetches the published server-count statistics of the given bot.
func (c *Client) Stats(ctx context.Context, botID uint64) (*BotStats, error) {
	var stats BotStats
	if err := c.get(ctx, fmt.Sprintf("/bots/%d/stats", botID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MyStats is a shortcut for the statistics of the client's own bot.
func (c *Client) MyStats(ctx context.Context) (*BotStats, error) {
	return c.Stats(ctx, c.botID)
}

// PostStats publishes updated statistics for the client's own bot. When
// neither ServerCount nor Shards is set there is nothing to publish: no
// request is issued and no rate-limit permit is consumed.
//
// Unlike reads, a failed publish surfaces the transport result so a silently
// stale server count is diagnosable.
func (c *Client) PostStats(ctx context.Context, update StatsUpdate) error {
	if update.ServerCount == nil && len(update.Shards) == 0 {
		return nil
	}
	return c.post(ctx, fmt.Sprintf("/bots/%d/stats", c.botID), update)
}
