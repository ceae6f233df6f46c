package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers 账号列表
// @Summary 获取全部后台账号
// @Tags User
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /api/users [get]
func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.userService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": users})
}

// GetUser 账号详情
// @Summary 获取单个后台账号
// @Tags User
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} model.User
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": user})
}

// CreateUser 创建账号
// @Summary 创建后台账号
// @Tags User
// @Security BearerAuth
// @Param body body dto.CreateUserReq true "账号字段"
// @Success 201 {object} model.User
// @Router /api/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.userService.Create(c.Request.Context(), service.UserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		IsActive:    req.IsActive,
		Permissions: req.Permissions,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"code": 0, "message": "success", "data": user})
}

// UpdateUser 更新账号
// @Summary 更新后台账号
// @Tags User
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param body body dto.UpdateUserReq true "账号字段"
// @Success 200 {object} model.User
// @Router /api/users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.userService.Update(c.Request.Context(), id, service.UserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		IsActive:    req.IsActive,
		Permissions: req.Permissions,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": user})
}

// DeleteUser 删除账号
// @Summary 删除后台账号（至少保留一个管理员）
// @Tags User
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} gin.H
// @Router /api/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "User deleted successfully"})
}
