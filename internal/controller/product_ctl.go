package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ==================== 查询接口 ====================

// GetProducts 商品列表
// @Summary 获取商品列表
// @Tags Product
// @Security BearerAuth
// @Param search query string false "名称模糊搜索"
// @Param status query string false "状态筛选"
// @Param sort_by query string false "排序字段"
// @Param sort_order query string false "asc / desc"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} dto.ListResp
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, limit := parsePageQuery(c)

	products, total, err := ctrl.productService.List(c.Request.Context(), repository.ProductFilter{
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
		Data:       products,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// GetProduct 商品详情
// @Summary 获取单个商品
// @Tags Product
// @Security BearerAuth
// @Param id path int true "商品ID"
// @Success 200 {object} model.Product
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": product})
}

// GetProductStats 商品统计
// @Summary 获取商品统计概览
// @Tags Product
// @Security BearerAuth
// @Success 200 {object} repository.ProductOverview
// @Router /api/products/stats [get]
func (ctrl *ProductController) GetProductStats(c *gin.Context) {
	stats, err := ctrl.productService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": stats})
}

// ==================== 写接口 ====================

// CreateProduct 创建商品
// @Summary 创建商品，未传 SKU 时自动生成
// @Tags Product
// @Security BearerAuth
// @Param body body dto.CreateProductReq true "商品字段"
// @Success 201 {object} model.Product
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), service.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Price:         req.Price,
		Stock:         &req.Stock,
		Image:         req.Image,
		Images:        req.Images,
		Status:        req.Status,
		SKU:           req.SKU,
		Weight:        req.Weight,
		Dimensions:    req.Dimensions,
		Tags:          req.Tags,
		Featured:      req.Featured,
		Variants:      req.Variants,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"code": 0, "message": "success", "data": product})
}

// UpdateProduct 更新商品
// @Summary 更新商品，库存跌破阈值时触发低库存通知
// @Tags Product
// @Security BearerAuth
// @Param id path int true "商品ID"
// @Param body body dto.UpdateProductReq true "商品字段"
// @Success 200 {object} model.Product
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	operatorID := middleware.GetUserID(c)
	product, err := ctrl.productService.Update(c.Request.Context(), id, service.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Price:         req.Price,
		Stock:         req.Stock,
		Image:         req.Image,
		Images:        req.Images,
		Status:        req.Status,
		Weight:        req.Weight,
		Dimensions:    req.Dimensions,
		Tags:          req.Tags,
		Featured:      req.Featured,
		Variants:      req.Variants,
	}, operatorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": product})
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Tags Product
// @Security BearerAuth
// @Param id path int true "商品ID"
// @Success 200 {object} gin.H
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "Product deleted successfully"})
}

// BulkProducts 批量操作
// @Summary 批量更新或删除商品
// @Tags Product
// @Security BearerAuth
// @Param body body dto.BulkReq true "批量参数"
// @Success 200 {object} gin.H
// @Router /api/products/bulk [post]
func (ctrl *ProductController) BulkProducts(c *gin.Context) {
	var req dto.BulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	affected, err := ctrl.productService.Bulk(c.Request.Context(), req.Action, req.IDs, req.Data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "affected": affected})
}
