package api

import (
	"context"

	"github.com/rickgao/tinvest-instruments/internal/model"
)

// GetFavorites returns the favorite instruments of the token's account.
func (c *Client) GetFavorites(ctx context.Context) (*GetFavoritesResponse, error) {
	return invoke[GetFavoritesResponse](ctx, c, "GetFavorites", nil)
}

func (c *Client) GetFavoriteGroups(ctx context.Context) (*GetFavoriteGroupsResponse, error) {
	return invoke[GetFavoriteGroupsResponse](ctx, c, "GetFavoriteGroups", nil)
}

// CreateFavoriteGroup creates a named group, optionally seeded with instruments.
func (c *Client) CreateFavoriteGroup(ctx context.Context, name string, instruments []model.FavoriteInstrument) (*CreateFavoriteGroupResponse, error) {
	return invoke[CreateFavoriteGroupResponse](ctx, c, "CreateFavoriteGroup", Args{"name": name, "instruments": instruments})
}

// EditFavorites adds or removes instruments.
func (c *Client) EditFavorites(ctx context.Context, instruments []model.FavoriteInstrument, action model.FavoriteAction) (*EditFavoritesResponse, error) {
	return invoke[EditFavoritesResponse](ctx, c, "EditFavorites", Args{"instruments": instruments, "actionType": action})
}

func (c *Client) DeleteFavoriteGroup(ctx context.Context, groupID string) (*DeleteFavoriteGroupResponse, error) {
	return invoke[DeleteFavoriteGroupResponse](ctx, c, "DeleteFavoriteGroup", Args{"favoriteGroupId": groupID})
}
