package directory

import (
	"context"
	"fmt"
)

// Bot fetches the profile of the given bot.
func (c *Client) Bot(ctx context.Context, botID uint64) (*Bot, error) {
	var payload botPayload
	if err := c.get(ctx, fmt.Sprintf("/bots/%d", botID), nil, &payload); err != nil {
		return nil, err
	}
	return payload.domain()
}

// MyBot is a shortcut for fetching the profile of the client's own bot.
func (c *Client) MyBot(ctx context.Context) (*Bot, error) {
	return c.Bot(ctx, c.botID)
}
