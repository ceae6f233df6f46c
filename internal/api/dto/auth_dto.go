package dto

// ==================== 请求 DTO ====================

// LoginReq 登录请求
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterReq 注册请求
type RegisterReq struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileReq 更新个人资料请求
type UpdateProfileReq struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Phone  *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Avatar *string `json:"avatar,omitempty" binding:"omitempty,max=512"`
}

// ChangePasswordReq 修改密码请求
type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
