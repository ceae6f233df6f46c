package dto

import "math"

// ==================== 通用响应 ====================

// Pagination 列表响应分页块
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination 计算总页数
func NewPagination(page, limit int, total int64) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// ListResp 通用列表响应
type ListResp struct {
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// FieldError 单字段校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResp 参数校验失败响应
type ValidationErrorResp struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// BulkReq 批量操作请求
type BulkReq struct {
	Action string                 `json:"action" binding:"required,oneof=activate deactivate update delete"`
	IDs    []int64                `json:"ids" binding:"required,min=1"`
	Data   map[string]interface{} `json:"data"`
}
