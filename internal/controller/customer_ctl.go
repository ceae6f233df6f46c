package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

type CustomerController struct {
	customerService *service.CustomerService
}

func NewCustomerController(customerService *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// ==================== 查询接口 ====================

// GetCustomers 客户列表
// @Summary 获取客户列表
// @Tags Customer
// @Security BearerAuth
// @Param search query string false "姓名/邮箱/电话搜索"
// @Param status query string false "active / inactive"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} dto.ListResp
// @Router /api/customers [get]
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	page, limit := parsePageQuery(c)

	customers, total, err := ctrl.customerService.List(c.Request.Context(), repository.CustomerFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, dto.ListResp{
		Code:       0,
		Message:    "success",
		Data:       customers,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// GetCustomer 客户详情
// @Summary 获取单个客户及其订单历史
// @Tags Customer
// @Security BearerAuth
// @Param id path int true "客户ID"
// @Success 200 {object} service.CustomerDetail
// @Router /api/customers/{id} [get]
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.customerService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": detail})
}

// GetCustomerStats 客户统计
// @Summary 获取客户统计概览
// @Tags Customer
// @Security BearerAuth
// @Success 200 {object} repository.CustomerOverview
// @Router /api/customers/stats [get]
func (ctrl *CustomerController) GetCustomerStats(c *gin.Context) {
	stats, err := ctrl.customerService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": stats})
}

// ==================== 写接口 ====================

// CreateCustomer 创建客户
// @Summary 创建客户
// @Tags Customer
// @Security BearerAuth
// @Param body body dto.CreateCustomerReq true "客户字段"
// @Success 201 {object} model.Customer
// @Router /api/customers [post]
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := ctrl.customerService.Create(c.Request.Context(), service.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Avatar:  req.Avatar,
		Address: req.Address,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"code": 0, "message": "success", "data": customer})
}

// UpdateCustomer 更新客户
// @Summary 更新客户
// @Tags Customer
// @Security BearerAuth
// @Param id path int true "客户ID"
// @Param body body dto.UpdateCustomerReq true "客户字段"
// @Success 200 {object} model.Customer
// @Router /api/customers/{id} [put]
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := ctrl.customerService.Update(c.Request.Context(), id, service.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Avatar:  req.Avatar,
		Address: req.Address,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": customer})
}

// DeleteCustomer 删除客户
// @Summary 删除客户
// @Tags Customer
// @Security BearerAuth
// @Param id path int true "客户ID"
// @Success 200 {object} gin.H
// @Router /api/customers/{id} [delete]
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.customerService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "Customer deleted successfully"})
}
