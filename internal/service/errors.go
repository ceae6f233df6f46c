package service

import "errors"

// ==================== 业务错误 ====================

// 控制器按这些错误映射 HTTP 状态码：
// NotFound -> 404，凭证类 -> 401，其余冲突/校验 -> 400
var (
	ErrNotFound = errors.New("resource not found")

	// 分类
	ErrDuplicateSlug = errors.New("category with this name already exists")
	ErrHasChildren   = errors.New("cannot delete category with subcategories")
	ErrHasProducts   = errors.New("cannot delete category with products")

	// 商品
	ErrDuplicateSKU = errors.New("product with this SKU already exists")

	// 用户/客户
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrLastAdmin      = errors.New("cannot delete the last admin user")
	ErrWrongPassword  = errors.New("current password is incorrect")

	// 认证
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")

	// 订单
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrIllegalTransition = errors.New("illegal status transition")

	// 批量操作
	ErrInvalidAction = errors.New("invalid action")

	// 配置
	ErrSettingNotFound = errors.New("setting not found")
)
