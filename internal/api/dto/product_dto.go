package dto

import "marketo_admin_v1/internal/model"

// ==================== 请求 DTO ====================

// CreateProductReq 创建商品请求
type CreateProductReq struct {
	Name          string                 `json:"name" binding:"required,max=255"`
	Description   *string                `json:"description,omitempty"`
	CategoryID    int64                  `json:"category_id" binding:"required,gt=0"`
	SubCategoryID int64                  `json:"sub_category_id" binding:"required,gt=0"`
	Price         *float64               `json:"price" binding:"required,gte=0"`
	Stock         int                    `json:"stock" binding:"gte=0"`
	Image         *string                `json:"image,omitempty"`
	Images        []string               `json:"images,omitempty"`
	Status        *string                `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	SKU           *string                `json:"sku,omitempty" binding:"omitempty,max=50"`
	Weight        *float64               `json:"weight,omitempty" binding:"omitempty,gte=0"`
	Dimensions    *model.Dimensions      `json:"dimensions,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Featured      *bool                  `json:"featured,omitempty"`
	Variants      []model.ProductVariant `json:"variants,omitempty"`
}

// UpdateProductReq 更新商品请求，缺省字段保持不变
type UpdateProductReq struct {
	Name          string                 `json:"name" binding:"omitempty,max=255"`
	Description   *string                `json:"description,omitempty"`
	CategoryID    int64                  `json:"category_id" binding:"omitempty,gt=0"`
	SubCategoryID int64                  `json:"sub_category_id" binding:"omitempty,gt=0"`
	Price         *float64               `json:"price,omitempty" binding:"omitempty,gte=0"`
	Stock         *int                   `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Image         *string                `json:"image,omitempty"`
	Images        []string               `json:"images,omitempty"`
	Status        *string                `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Weight        *float64               `json:"weight,omitempty" binding:"omitempty,gte=0"`
	Dimensions    *model.Dimensions      `json:"dimensions,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Featured      *bool                  `json:"featured,omitempty"`
	Variants      []model.ProductVariant `json:"variants,omitempty"`
}
