package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/service"
)

// ==================== 参数解析 ====================

// parseIDParam 解析路径中的数字 ID，非法时直接写 400 响应
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// parsePageQuery 解析分页查询参数
func parsePageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit
}

// ==================== 响应 ====================

// respondBindError 参数校验失败统一响应
// validator 校验错误逐字段展开，其余 JSON 解析错误整体返回
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{
				Field:   fe.Field(),
				Message: "failed validation on '" + fe.Tag() + "'",
			})
		}
		c.JSON(400, dto.ValidationErrorResp{
			Code:    400,
			Message: "Validation failed",
			Errors:  fields,
		})
		return
	}
	c.JSON(400, gin.H{"code": 400, "message": "Invalid request body: " + err.Error()})
}

// respondServiceError 业务错误到 HTTP 状态码的统一映射
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(404, gin.H{"code": 404, "message": "Resource not found"})
	case errors.Is(err, service.ErrSettingNotFound):
		c.JSON(404, gin.H{"code": 404, "message": "Setting not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(401, gin.H{"code": 401, "message": "Invalid credentials"})
	case errors.Is(err, service.ErrAccountDisabled):
		c.JSON(401, gin.H{"code": 401, "message": "Account is deactivated"})
	case errors.Is(err, service.ErrTooManyAttempts):
		c.JSON(429, gin.H{"code": 429, "message": "Too many login attempts, please try again later"})
	case errors.Is(err, service.ErrDuplicateSlug):
		c.JSON(400, gin.H{"code": 400, "message": "Category with this name already exists"})
	case errors.Is(err, service.ErrDuplicateSKU):
		c.JSON(400, gin.H{"code": 400, "message": "Product with this SKU already exists"})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(400, gin.H{"code": 400, "message": "Email already in use"})
	case errors.Is(err, service.ErrHasChildren):
		c.JSON(400, gin.H{"code": 400, "message": "Cannot delete category with subcategories"})
	case errors.Is(err, service.ErrHasProducts):
		c.JSON(400, gin.H{"code": 400, "message": "Cannot delete category with products"})
	case errors.Is(err, service.ErrLastAdmin):
		c.JSON(400, gin.H{"code": 400, "message": "Cannot delete the last admin user"})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(400, gin.H{"code": 400, "message": "Current password is incorrect"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(400, gin.H{"code": 400, "message": "Invalid status value"})
	case errors.Is(err, service.ErrIllegalTransition):
		c.JSON(400, gin.H{"code": 400, "message": "Status transition not allowed"})
	case errors.Is(err, service.ErrInvalidAction):
		c.JSON(400, gin.H{"code": 400, "message": "Invalid request"})
	default:
		// 非生产模式附带错误详情，方便排查
		if gin.Mode() != gin.ReleaseMode {
			c.JSON(500, gin.H{"code": 500, "message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "Server error"})
	}
}
