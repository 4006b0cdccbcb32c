package backend

import (
	"context"
	"fmt"
)

// Category is a product category.
type Category struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	ParentID   *int64 `json:"parentId"`
}

// RepairPreset is a reusable repair line item with a fixed cost.
type RepairPreset struct {
	PresetID   int64  `json:"presetId"`
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Cost       int64  `json:"cost"`
}

// RepairPresetInput is the create payload.
type RepairPresetInput struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Cost       int64  `json:"cost"`
}

// ListCategories returns the full category tree, flat.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.get(ctx, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRepairPresets returns every preset.
func (c *Client) ListRepairPresets(ctx context.Context) ([]RepairPreset, error) {
	var out []RepairPreset
	if err := c.get(ctx, "/api/repair-presets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRepairPresetsByCategory returns the presets for one category.
func (c *Client) ListRepairPresetsByCategory(ctx context.Context, categoryID int64) ([]RepairPreset, error) {
	var out []RepairPreset
	if err := c.get(ctx, fmt.Sprintf("/api/repair-presets/category/%d", categoryID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRepairPreset registers a preset.
func (c *Client) CreateRepairPreset(ctx context.Context, in RepairPresetInput) (*RepairPreset, error) {
	var out RepairPreset
	if err := c.post(ctx, "/api/repair-presets", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRepairPreset removes one preset.
func (c *Client) DeleteRepairPreset(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/repair-presets/%d", id), nil)
}
