package dto

import "encoding/json"

// ==================== 请求 DTO ====================

// CreateCategoryReq 创建分类请求
type CreateCategoryReq struct {
	Name            string  `json:"name" binding:"required,max=100"`
	Description     *string `json:"description,omitempty"`
	ParentID        *int64  `json:"parent_id,omitempty"`
	Image           *string `json:"image,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty" binding:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description,omitempty" binding:"omitempty,max=500"`
}

// UpdateCategoryReq 更新分类请求
// ParentID 用 RawMessage 区分"未传"与"显式传 null"（传 null 表示提升为根分类）
type UpdateCategoryReq struct {
	Name            *string         `json:"name,omitempty" binding:"omitempty,max=100"`
	Description     *string         `json:"description,omitempty"`
	ParentID        json.RawMessage `json:"parent_id,omitempty"`
	Image           *string         `json:"image,omitempty"`
	IsActive        *bool           `json:"is_active,omitempty"`
	MetaTitle       *string         `json:"meta_title,omitempty" binding:"omitempty,max=255"`
	MetaDescription *string         `json:"meta_description,omitempty" binding:"omitempty,max=500"`
}
