package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// ==================== 登录注册 ====================

// Login 登录
// @Summary 邮箱密码登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginReq true "登录参数"
// @Success 200 {object} service.LoginResult
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Register 注册
// @Summary 注册新账号
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterReq true "注册参数"
// @Success 201 {object} service.LoginResult
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"code":    0,
		"message": "success",
		"token":   result.Token,
		"user":    result.User,
	})
}

// ==================== 个人资料 ====================

// Profile 当前用户资料
// @Summary 获取当前登录用户资料
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} model.User
// @Router /api/auth/profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := ctrl.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": user})
}

// UpdateProfile 更新当前用户资料
// @Summary 更新当前登录用户资料
// @Tags Auth
// @Security BearerAuth
// @Param body body dto.UpdateProfileReq true "资料字段"
// @Success 200 {object} model.User
// @Router /api/auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	user, err := ctrl.authService.UpdateProfile(c.Request.Context(), userID, service.ProfileInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": user})
}

// ChangePassword 修改密码
// @Summary 修改当前登录用户密码
// @Tags Auth
// @Security BearerAuth
// @Param body body dto.ChangePasswordReq true "新旧密码"
// @Success 200 {object} gin.H
// @Router /api/auth/change-password [put]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	if err := ctrl.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "Password updated successfully"})
}

// GetUserCount 查询启用中的账号数
// @Summary 查询启用中的账号数
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Router /api/auth/count [get]
func (ctrl *AuthController) GetUserCount(c *gin.Context) {
	count, err := ctrl.authService.ActiveUserCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "count": count})
}
