package dto

import "github.com/minumaeng82-netizen/dasuDashboard/internal/model"

type UpsertShortcutRequest struct {
	Label string `json:"label" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

type ShortcutListResponse struct {
	Items []model.Shortcut `json:"items"`
}
