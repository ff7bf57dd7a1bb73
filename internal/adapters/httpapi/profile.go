package httpapi

import (
	"context"
	"fmt"

	"github.com/bnema/coach-cli/internal/domain"
)

const photoField = "photo"

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	var user domain.User
	if err := c.postMultipart(ctx, "/user/profile/update", update.FormFields(), photoField, update.Photo, &user); err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}
