package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/reviewdeck/adminctl/internal/common"
	"github.com/reviewdeck/adminctl/internal/models"
)

type categoryAPI struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount *int   `json:"productCount"`
	Status       string `json:"status"`
}

type masterDataItemAPI struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Status     string `json:"status"`
	UsageCount *int   `json:"usageCount"`
}

// Categories fetches the category list from the master-data service.
func (c *Client) Categories(ctx context.Context, token string) ([]models.Category, error) {
	raw, err := c.fetchList(ctx, token, "/categories")
	if err != nil {
		return nil, err
	}

	var items []categoryAPI
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	out := make([]models.Category, 0, len(items))
	for _, it := range items {
		cat := models.Category{ID: it.ID, Name: it.Name, Slug: it.Slug, Status: it.Status}
		if it.ProductCount != nil {
			cat.ProductCount = *it.ProductCount
		}
		if cat.Status == "" {
			cat.Status = models.UserStatusActive
		}
		out = append(out, cat)
	}
	return out, nil
}

// Tags fetches the tag list from the master-data service.
func (c *Client) Tags(ctx context.Context, token string) ([]models.MasterDataItem, error) {
	return c.fetchItems(ctx, token, "/tags", models.MasterDataTag)
}

// Attributes fetches the attribute list from the master-data service.
func (c *Client) Attributes(ctx context.Context, token string) ([]models.MasterDataItem, error) {
	return c.fetchItems(ctx, token, "/attributes", models.MasterDataAttribute)
}

func (c *Client) fetchItems(ctx context.Context, token, path, kind string) ([]models.MasterDataItem, error) {
	raw, err := c.fetchList(ctx, token, path)
	if err != nil {
		return nil, err
	}

	var items []masterDataItemAPI
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	out := make([]models.MasterDataItem, 0, len(items))
	for _, it := range items {
		item := models.MasterDataItem{
			ID:     it.ID,
			Type:   it.Type,
			Name:   it.Name,
			Code:   it.Code,
			Status: it.Status,
		}
		if item.Type == "" {
			item.Type = kind
		}
		if item.Status == "" {
			item.Status = models.UserStatusActive
		}
		if it.UsageCount != nil {
			item.UsageCount = *it.UsageCount
		}
		out = append(out, item)
	}
	return out, nil
}

// fetchList GETs a master-data path and resolves the response's two legal
// shapes, a bare JSON array or an object wrapping it under "data", into the
// raw array bytes. Any other shape fails closed with common.ErrDecode.
func (c *Client) fetchList(ctx context.Context, token, path string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, c.masterURL+path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var bare json.RawMessage
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("%s: %w", path, common.ErrDecode)
	}

	if len(bare) > 0 && bare[0] == '[' {
		return bare, nil
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Data) > 0 && wrapped.Data[0] == '[' {
		return wrapped.Data, nil
	}
	return nil, fmt.Errorf("%s: %w", path, common.ErrDecode)
}
