package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

type BannerController struct {
	bannerService *service.BannerService
}

func NewBannerController(bannerService *service.BannerService) *BannerController {
	return &BannerController{bannerService: bannerService}
}

// ==================== 查询接口 ====================

// GetBanners 横幅列表
// @Summary 获取横幅列表
// @Tags Banner
// @Security BearerAuth
// @Param search query string false "标题搜索"
// @Param status query string false "active / inactive"
// @Param type query string false "regular / promotional"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} dto.ListResp
// @Router /api/banners [get]
func (ctrl *BannerController) GetBanners(c *gin.Context) {
	page, limit := parsePageQuery(c)

	banners, total, err := ctrl.bannerService.List(c.Request.Context(), repository.BannerFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Type:      c.Query("type"),
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
		Data:       banners,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// GetActiveBanners 展示端横幅
// @Summary 获取指定类型的启用横幅（公开接口）
// @Tags Banner
// @Param type path string true "regular / promotional"
// @Param limit query int false "数量上限" default(10)
// @Success 200 {array} model.Banner
// @Router /api/banners/active/{type} [get]
func (ctrl *BannerController) GetActiveBanners(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	banners, err := ctrl.bannerService.ListActive(c.Request.Context(), c.Param("type"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": banners})
}

// GetBanner 横幅详情
// @Summary 获取单个横幅
// @Tags Banner
// @Security BearerAuth
// @Param id path int true "横幅ID"
// @Success 200 {object} model.Banner
// @Router /api/banners/{id} [get]
func (ctrl *BannerController) GetBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	banner, err := ctrl.bannerService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": banner})
}

// GetBannerStats 横幅统计
// @Summary 获取横幅统计概览
// @Tags Banner
// @Security BearerAuth
// @Success 200 {object} repository.BannerStats
// @Router /api/banners/stats [get]
func (ctrl *BannerController) GetBannerStats(c *gin.Context) {
	stats, err := ctrl.bannerService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": stats})
}

// ==================== 写接口 ====================

// CreateBanner 创建横幅
// @Summary 创建横幅
// @Tags Banner
// @Security BearerAuth
// @Param body body dto.CreateBannerReq true "横幅字段"
// @Success 201 {object} model.Banner
// @Router /api/banners [post]
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	var req dto.CreateBannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	banner, err := ctrl.bannerService.Create(c.Request.Context(), service.BannerInput{
		Title:     req.Title,
		Image:     req.Image,
		Type:      req.Type,
		Status:    req.Status,
		ProductID: req.ProductID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"code": 0, "message": "success", "data": banner})
}

// UpdateBanner 更新横幅
// @Summary 更新横幅，product_id 传 null 表示解除商品关联
// @Tags Banner
// @Security BearerAuth
// @Param id path int true "横幅ID"
// @Param body body dto.UpdateBannerReq true "横幅字段"
// @Success 200 {object} model.Banner
// @Router /api/banners/{id} [put]
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	productID, provided, err := parseNullableID(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "Invalid product_id"})
		return
	}

	banner, err := ctrl.bannerService.Update(c.Request.Context(), id, service.BannerInput{
		Title:           req.Title,
		Image:           req.Image,
		Type:            req.Type,
		Status:          req.Status,
		ProductID:       productID,
		ProductProvided: provided,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": banner})
}

// DeleteBanner 删除横幅
// @Summary 删除横幅
// @Tags Banner
// @Security BearerAuth
// @Param id path int true "横幅ID"
// @Success 200 {object} gin.H
// @Router /api/banners/{id} [delete]
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.bannerService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "Banner deleted successfully"})
}

// BulkBanners 批量操作
// @Summary 批量启用/停用/更新/删除横幅
// @Tags Banner
// @Security BearerAuth
// @Param body body dto.BulkReq true "批量参数"
// @Success 200 {object} gin.H
// @Router /api/banners/bulk [post]
func (ctrl *BannerController) BulkBanners(c *gin.Context) {
	var req dto.BulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	affected, err := ctrl.bannerService.Bulk(c.Request.Context(), req.Action, req.IDs, req.Data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "affected": affected})
}
