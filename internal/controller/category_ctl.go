package controller

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

type CategoryController struct {
	categoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ==================== 查询接口 ====================

// GetCategories 分类列表
// @Summary 获取分类列表（平铺）
// @Tags Category
// @Param status query string false "active / inactive"
// @Param parent_id query int false "按父分类过滤，0 表示只看根分类"
// @Success 200 {array} model.Category
// @Router /api/categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	filter := repository.CategoryFilter{
		Status: c.Query("status"),
	}
	if raw := c.Query("parent_id"); raw != "" {
		if pid, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.HasParent = true
			if pid > 0 {
				filter.ParentID = &pid
			}
		}
	}

	categories, err := ctrl.categoryService.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": categories})
}

// GetCategoryTree 分类树
// @Summary 获取完整的分类层级树
// @Tags Category
// @Param status query string false "active / inactive，各层级同时生效"
// @Success 200 {array} model.Category
// @Router /api/categories/tree [get]
func (ctrl *CategoryController) GetCategoryTree(c *gin.Context) {
	tree, err := ctrl.categoryService.Tree(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": tree})
}

// GetCategory 分类详情
// @Summary 获取单个分类
// @Tags Category
// @Param id path int true "分类ID"
// @Success 200 {object} model.Category
// @Router /api/categories/{id} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": category})
}

// GetCategoryStats 分类统计
// @Summary 获取分类数量统计
// @Tags Category
// @Security BearerAuth
// @Success 200 {object} repository.CategoryStats
// @Router /api/categories/stats [get]
func (ctrl *CategoryController) GetCategoryStats(c *gin.Context) {
	stats, err := ctrl.categoryService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": stats})
}

// ==================== 写接口 ====================

// CreateCategory 创建分类
// @Summary 创建分类，slug 由名称自动派生
// @Tags Category
// @Security BearerAuth
// @Param body body dto.CreateCategoryReq true "分类字段"
// @Success 201 {object} model.Category
// @Router /api/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := ctrl.categoryService.Create(c.Request.Context(), service.CategoryInput{
		Name:            req.Name,
		Description:     req.Description,
		ParentID:        req.ParentID,
		ParentProvided:  req.ParentID != nil,
		Image:           req.Image,
		IsActive:        req.IsActive,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, gin.H{"code": 0, "message": "success", "data": category})
}

// UpdateCategory 更新分类
// @Summary 更新分类，parent_id 传 null 表示提升为根分类
// @Tags Category
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param body body dto.UpdateCategoryReq true "分类字段"
// @Success 200 {object} model.Category
// @Router /api/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := service.CategoryInput{
		Description:     req.Description,
		Image:           req.Image,
		IsActive:        req.IsActive,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	parentID, provided, err := parseNullableID(req.ParentID)
	if err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "Invalid parent_id"})
		return
	}
	input.ParentID = parentID
	input.ParentProvided = provided

	category, err := ctrl.categoryService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": category})
}

// DeleteCategory 删除分类
// @Summary 删除分类，有子分类或商品引用时拒绝
// @Tags Category
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} gin.H
// @Router /api/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "Category deleted successfully"})
}

// BulkCategories 批量操作
// @Summary 批量启用/停用/更新分类
// @Tags Category
// @Security BearerAuth
// @Param body body dto.BulkReq true "批量参数"
// @Success 200 {object} gin.H
// @Router /api/categories/bulk [post]
func (ctrl *CategoryController) BulkCategories(c *gin.Context) {
	var req dto.BulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	affected, err := ctrl.categoryService.BulkUpdate(c.Request.Context(), req.IDs, req.Action, req.Data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "affected": affected})
}

// ==================== 工具 ====================

// parseNullableID 解析可为 null 的 ID 字段
// 返回 (值, 是否提供, 错误)：字段缺省时 provided 为 false，显式 null 时值为 nil
func parseNullableID(raw json.RawMessage) (*int64, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, true, nil
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, false, err
	}
	return &id, true, nil
}
