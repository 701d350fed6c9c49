package directory

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Votes returns the IDs of every user that has voted for the given bot.
func (c *Client) Votes(ctx context.Context, botID uint64) ([]uint64, error) {
	var payload []partialUserPayload
	if err := c.get(ctx, fmt.Sprintf("/bots/%d/votes", botID), nil, &payload); err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(payload))
	for i := range payload {
		voter, err := payload[i].domain()
		if err != nil {
			return nil, err
		}
		ids = append(ids, voter.ID)
	}
	return ids, nil
}

// MyVotes is a shortcut for the vote list of the client's own bot.
func (c *Client) MyVotes(ctx context.Context) ([]uint64, error) {
	return c.Votes(ctx, c.botID)
}

// Voted reports whether the user has voted for the given bot.
func (c *Client) Voted(ctx context.Context, botID, userID uint64) (bool, error) {
	query := url.Values{"userId": {strconv.FormatUint(userID, 10)}}

	var payload votedPayload
	if err := c.get(ctx, fmt.Sprintf("/bots/%d/check", botID), query, &payload); err != nil {
		return false, err
	}
	return payload.Voted != 0, nil
}

// VotedForMe is a shortcut for checking a vote against the client's own bot.
func (c *Client) VotedForMe(ctx context.Context, userID uint64) (bool, error) {
	return c.Voted(ctx, c.botID, userID)
}
