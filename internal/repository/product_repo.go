package repository

import (
	"context"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 过滤条件 ====================

// ProductFilter 商品查询条件
type ProductFilter struct {
	Search    string // 按名称模糊匹配（大小写不敏感）
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ProductOverview 商品统计概览
type ProductOverview struct {
	TotalProducts    int64   `json:"total_products"`
	ActiveProducts   int64   `json:"active_products"`
	LowStockProducts int64   `json:"low_stock_products"`
	TotalValue       float64 `json:"total_value"`
}

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	ListLowStock(ctx context.Context, limit int) ([]model.Product, error)

	// 批量操作
	BulkUpdate(ctx context.Context, ids []int64, fields map[string]interface{}) (int64, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)

	// 统计
	Overview(ctx context.Context) (*ProductOverview, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	// total 独立于分页窗口统计，与并发写不保证一致，后台场景可接受
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, productSortable))

	page, limit := normalizePage(filter.Page, filter.Limit)
	var products []model.Product
	err := query.
		Preload("Category").
		Preload("SubCategory").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepo) ListLowStock(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("stock < ?", model.LowStockThreshold).
		Order("stock ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) BulkUpdate(ctx context.Context, ids []int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Product{}).Where("id IN ?", ids).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *productRepo) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Product{})
	return result.RowsAffected, result.Error
}

// Overview 单条聚合扫全表，总量/在售/低库存/库存总值一次取回
func (r *productRepo) Overview(ctx context.Context) (*ProductOverview, error) {
	overview := &ProductOverview{}
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select(`COUNT(*) AS total_products,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_products,
			COALESCE(SUM(CASE WHEN stock < ? THEN 1 ELSE 0 END), 0) AS low_stock_products,
			COALESCE(SUM(price * stock), 0) AS total_value`, model.LowStockThreshold).
		Scan(overview).Error
	if err != nil {
		return nil, err
	}
	return overview, nil
}

func (r *productRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ? OR sub_category_id = ?", categoryID, categoryID).
		Count(&count).Error
	return count, err
}
