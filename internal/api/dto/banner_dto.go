package dto

import "encoding/json"

// ==================== 请求 DTO ====================

// CreateBannerReq 创建横幅请求
type CreateBannerReq struct {
	Title     string  `json:"title" binding:"required,max=255"`
	Image     string  `json:"image" binding:"required,max=512"`
	Type      *string `json:"type,omitempty" binding:"omitempty,oneof=regular promotional"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	ProductID *int64  `json:"product_id,omitempty" binding:"omitempty,gt=0"`
}

// UpdateBannerReq 更新横幅请求
// ProductID 用 RawMessage 区分"未传"与"显式传 null"（传 null 表示解除商品关联）
type UpdateBannerReq struct {
	Title     string          `json:"title" binding:"omitempty,max=255"`
	Image     string          `json:"image" binding:"omitempty,max=512"`
	Type      *string         `json:"type,omitempty" binding:"omitempty,oneof=regular promotional"`
	Status    *string         `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	ProductID json.RawMessage `json:"product_id,omitempty"`
}
