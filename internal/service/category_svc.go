package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/pkg/utils"
)

// CategoryService 分类树维护
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// ==================== 输入 ====================

// CategoryInput 创建/更新入参，指针字段区分"未提供"和"清空"
type CategoryInput struct {
	Name            string
	Description     *string
	ParentID        *int64
	ParentProvided  bool
	Image           *string
	MetaTitle       *string
	MetaDescription *string
	IsActive        *bool
}

// ==================== 增删改 ====================

// Create 创建分类
// slug 由名称派生，重复返回 ErrDuplicateSlug（库级唯一索引兜底并发创建）；
// level = 父级 level + 1，父级缺失按根处理
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*model.Category, error) {
	slug := utils.Slugify(input.Name)

	if _, err := s.categoryRepo.GetBySlug(ctx, slug, 0); err == nil {
		return nil, ErrDuplicateSlug
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{
		Name:     input.Name,
		Slug:     slug,
		IsActive: true,
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Image != nil {
		category.Image = *input.Image
	}
	if input.MetaTitle != nil {
		category.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		category.MetaDescription = *input.MetaDescription
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if input.ParentID != nil {
		if parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID); err == nil {
			category.ParentID = input.ParentID
			category.Level = parent.Level + 1
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 父级不存在时按根分类落库，level = 0
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return s.categoryRepo.GetByIDWithRelations(ctx, category.ID)
}

// Update 更新分类
// 名称变化重算 slug（排除自身查重）；父级变化只重算自身 level，不向后代级联
func (s *CategoryService) Update(ctx context.Context, id int64, input CategoryInput) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		slug := utils.Slugify(input.Name)
		if _, err := s.categoryRepo.GetBySlug(ctx, slug, id); err == nil {
			return nil, ErrDuplicateSlug
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Name = input.Name
		category.Slug = slug
	}

	if input.ParentProvided {
		if input.ParentID == nil {
			category.ParentID = nil
			category.Level = 0
		} else if category.ParentID == nil || *category.ParentID != *input.ParentID {
			parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID)
			switch {
			case err == nil:
				category.ParentID = input.ParentID
				category.Level = parent.Level + 1
			case errors.Is(err, gorm.ErrRecordNotFound):
				// 与创建一致：指向的父分类不存在时落回根层级
				category.ParentID = nil
				category.Level = 0
			default:
				return nil, err
			}
		}
	}

	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Image != nil {
		category.Image = *input.Image
	}
	if input.MetaTitle != nil {
		category.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		category.MetaDescription = *input.MetaDescription
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return s.categoryRepo.GetByIDWithRelations(ctx, id)
}

// Delete 删除分类，有子分类或被商品引用时拒绝
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	children, err := s.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrHasChildren
	}

	products, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return ErrHasProducts
	}

	return s.categoryRepo.Delete(ctx, id)
}

// ==================== 查询 ====================

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, filter repository.CategoryFilter) ([]model.Category, error) {
	return s.categoryRepo.List(ctx, filter)
}

// Tree 返回根分类并逐层挂载子树，每一层都应用同一个 status 过滤
func (s *CategoryService) Tree(ctx context.Context, status string) ([]model.Category, error) {
	roots, err := s.categoryRepo.ListRoots(ctx, status)
	if err != nil {
		return nil, err
	}

	for i := range roots {
		if err := s.attachChildren(ctx, &roots[i], status); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

func (s *CategoryService) attachChildren(ctx context.Context, node *model.Category, status string) error {
	children, err := s.categoryRepo.ListChildren(ctx, node.ID, status)
	if err != nil {
		return err
	}

	for i := range children {
		if err := s.attachChildren(ctx, &children[i], status); err != nil {
			return err
		}
	}
	node.Children = children
	return nil
}

// ==================== 批量与统计 ====================

// BulkUpdate 批量操作，action ∈ {activate, deactivate, update}
// 整批一次 UPDATE，成败一体，无逐条错误隔离
func (s *CategoryService) BulkUpdate(ctx context.Context, ids []int64, action string, data map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInvalidAction
	}

	var fields map[string]interface{}
	switch action {
	case "activate":
		fields = map[string]interface{}{"is_active": true}
	case "deactivate":
		fields = map[string]interface{}{"is_active": false}
	case "update":
		if len(data) == 0 {
			return 0, ErrInvalidAction
		}
		fields = data
	default:
		return 0, ErrInvalidAction
	}

	return s.categoryRepo.BulkUpdate(ctx, ids, fields)
}

func (s *CategoryService) Stats(ctx context.Context) (*repository.CategoryStats, error) {
	return s.categoryRepo.Stats(ctx)
}
