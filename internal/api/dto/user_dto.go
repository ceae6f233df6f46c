package dto

import "marketo_admin_v1/internal/model"

// ==================== 请求 DTO ====================

// CreateUserReq 创建后台账号请求
type CreateUserReq struct {
	Name        string             `json:"name" binding:"required,max=100"`
	Email       string             `json:"email" binding:"required,email"`
	Password    string             `json:"password" binding:"required,min=6"`
	Role        string             `json:"role" binding:"omitempty,oneof=admin manager editor viewer staff"`
	Phone       *string            `json:"phone,omitempty" binding:"omitempty,max=30"`
	Avatar      *string            `json:"avatar,omitempty"`
	IsActive    *bool              `json:"is_active,omitempty"`
	Permissions *model.Permissions `json:"permissions,omitempty"`
}

// UpdateUserReq 更新后台账号请求
type UpdateUserReq struct {
	Name        string             `json:"name" binding:"omitempty,max=100"`
	Email       string             `json:"email" binding:"omitempty,email"`
	Password    string             `json:"password" binding:"omitempty,min=6"`
	Role        string             `json:"role" binding:"omitempty,oneof=admin manager editor viewer staff"`
	Phone       *string            `json:"phone,omitempty" binding:"omitempty,max=30"`
	Avatar      *string            `json:"avatar,omitempty"`
	IsActive    *bool              `json:"is_active,omitempty"`
	Permissions *model.Permissions `json:"permissions,omitempty"`
}
