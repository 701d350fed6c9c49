package directory

import (
	"context"
	"fmt"
)

// User fetches the profile of a directory user.
func (c *Client) User(ctx context.Context, userID uint64) (*User, error) {
	var payload userPayload
	if err := c.get(ctx, fmt.Sprintf("/users/%d", userID), nil, &payload); err != nil {
		return nil, err
	}
	return payload.domain()
}
