package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// ==================== 查询接口 ====================

// GetOrders 订单列表
// @Summary 获取订单列表
// @Tags Order
// @Security BearerAuth
// @Param search query string false "订单号/客户名/邮箱搜索"
// @Param status query string false "状态筛选"
// @Param date query string false "下单日 YYYY-MM-DD"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} dto.ListResp
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	page, limit := parsePageQuery(c)

	orders, total, err := ctrl.orderService.List(c.Request.Context(), repository.OrderFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Date:      c.Query("date"),
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
		Data:       orders,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// GetOrder 订单详情
// @Summary 获取单个订单
// @Tags Order
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} model.Order
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": order})
}

// GetOrderStats 订单统计
// @Summary 获取订单统计概览与近几日走势
// @Tags Order
// @Security BearerAuth
// @Param days query int false "统计天数" default(7)
// @Success 200 {object} gin.H
// @Router /api/orders/stats [get]
func (ctrl *OrderController) GetOrderStats(c *gin.Context) {
	overview, err := ctrl.orderService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	daily, err := ctrl.orderService.DailyStats(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"overview": overview,
			"daily":    daily,
		},
	})
}

// ==================== 写接口 ====================

// CreateOrder 创建订单
// @Summary 创建订单，金额与订单号由服务端生成
// @Tags Order
// @Security BearerAuth
// @Param body body dto.CreateOrderReq true "订单字段"
// @Success 201 {object} model.Order
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			Name:     item.Name,
			Price:    *item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
			SKU:      item.SKU,
		})
	}

	operatorID := middleware.GetUserID(c)
	order, err := ctrl.orderService.Create(c.Request.Context(), service.OrderCreateInput{
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		ShippingCharge:  req.ShippingCharge,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	}, operatorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"code": 0, "message": "success", "data": order})
}

// UpdateOrder 更新订单
// @Summary 更新订单，状态变更按迁移表校验
// @Tags Order
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Param body body dto.UpdateOrderReq true "订单字段"
// @Success 200 {object} model.Order
// @Router /api/orders/{id} [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctrl.orderService.Update(c.Request.Context(), id, service.OrderUpdateInput{
		Status:            req.Status,
		PaymentStatus:     req.PaymentStatus,
		TrackingNumber:    req.TrackingNumber,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": order})
}

// UpdateOrderStatus 更新订单状态
// @Summary 单独推进订单状态
// @Tags Order
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Param body body dto.UpdateOrderStatusReq true "目标状态"
// @Success 200 {object} model.Order
// @Router /api/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctrl.orderService.Update(c.Request.Context(), id, service.OrderUpdateInput{
		Status: &req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": order})
}

// UpdatePaymentStatus 更新支付状态
// @Summary 单独推进支付状态
// @Tags Order
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Param body body dto.UpdatePaymentStatusReq true "目标状态"
// @Success 200 {object} model.Order
// @Router /api/orders/{id}/payment [put]
func (ctrl *OrderController) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctrl.orderService.Update(c.Request.Context(), id, service.OrderUpdateInput{
		PaymentStatus: &req.PaymentStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": order})
}

// DeleteOrder 删除订单
// @Summary 删除订单
// @Tags Order
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} gin.H
// @Router /api/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.orderService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "Order deleted successfully"})
}
