package dto

import "marketo_admin_v1/internal/model"

// ==================== 请求 DTO ====================

// CreateCustomerReq 创建客户请求
type CreateCustomerReq struct {
	Name    string                 `json:"name" binding:"required,max=100"`
	Email   string                 `json:"email" binding:"required,email"`
	Phone   *string                `json:"phone,omitempty" binding:"omitempty,max=30"`
	Avatar  *string                `json:"avatar,omitempty"`
	Address *model.CustomerAddress `json:"address,omitempty"`
	Status  *string                `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Notes   *string                `json:"notes,omitempty"`
}

// UpdateCustomerReq 更新客户请求
type UpdateCustomerReq struct {
	Name    string                 `json:"name" binding:"omitempty,max=100"`
	Email   string                 `json:"email" binding:"omitempty,email"`
	Phone   *string                `json:"phone,omitempty" binding:"omitempty,max=30"`
	Avatar  *string                `json:"avatar,omitempty"`
	Address *model.CustomerAddress `json:"address,omitempty"`
	Status  *string                `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Notes   *string                `json:"notes,omitempty"`
}
