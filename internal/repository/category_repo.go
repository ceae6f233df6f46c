package repository

import (
	"context"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 过滤条件 ====================

// CategoryFilter 分类查询条件
type CategoryFilter struct {
	Status    string // "active" / "inactive"，空值不过滤
	ParentID  *int64 // 指向 -1 表示只要根分类
	HasParent bool   // 是否启用 ParentID 过滤
}

// CategoryStats 分类统计
type CategoryStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Parent   int64 `json:"parent"`
	Sub      int64 `json:"sub"`
}

// ==================== 接口定义 ====================

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	GetByIDWithRelations(ctx context.Context, id int64) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string, excludeID int64) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, filter CategoryFilter) ([]model.Category, error)
	ListRoots(ctx context.Context, status string) ([]model.Category, error)
	ListChildren(ctx context.Context, parentID int64, status string) ([]model.Category, error)

	CountChildren(ctx context.Context, id int64) (int64, error)
	BulkUpdate(ctx context.Context, ids []int64, fields map[string]interface{}) (int64, error)
	Stats(ctx context.Context) (*CategoryStats, error)
}

// ==================== 仓储实现 ====================

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) GetByIDWithRelations(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children").
		First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug 按 slug 查找，excludeID > 0 时排除自身（更新场景）
func (r *categoryRepo) GetBySlug(ctx context.Context, slug string, excludeID int64) (*model.Category, error) {
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var category model.Category
	if err := query.First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *categoryRepo) List(ctx context.Context, filter CategoryFilter) ([]model.Category, error) {
	query := r.db.WithContext(ctx).Model(&model.Category{}).
		Preload("Parent").
		Preload("Children")

	if filter.Status != "" {
		query = query.Where("is_active = ?", filter.Status == "active")
	}
	if filter.HasParent {
		if filter.ParentID == nil {
			query = query.Where("parent_id IS NULL")
		} else {
			query = query.Where("parent_id = ?", *filter.ParentID)
		}
	}

	var categories []model.Category
	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) ListRoots(ctx context.Context, status string) ([]model.Category, error) {
	query := r.db.WithContext(ctx).Where("parent_id IS NULL")
	if status != "" {
		query = query.Where("is_active = ?", status == "active")
	}

	var categories []model.Category
	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) ListChildren(ctx context.Context, parentID int64, status string) ([]model.Category, error) {
	query := r.db.WithContext(ctx).Where("parent_id = ?", parentID)
	if status != "" {
		query = query.Where("is_active = ?", status == "active")
	}

	var categories []model.Category
	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) CountChildren(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

// BulkUpdate 批量更新，整批一起成败
func (r *categoryRepo) BulkUpdate(ctx context.Context, ids []int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Category{}).Where("id IN ?", ids).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *categoryRepo) Stats(ctx context.Context) (*CategoryStats, error) {
	stats := &CategoryStats{}
	db := r.db.WithContext(ctx).Model(&model.Category{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("is_active = ?", false).Count(&stats.Inactive).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("parent_id IS NULL").Count(&stats.Parent).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("parent_id IS NOT NULL").Count(&stats.Sub).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
