package repository

import (
	"context"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 过滤条件 ====================

// BannerFilter 横幅查询条件
type BannerFilter struct {
	Search    string // 标题模糊匹配
	Status    string
	Type      string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// BannerStats 横幅统计
type BannerStats struct {
	TotalBanners       int64 `json:"total_banners"`
	ActiveBanners      int64 `json:"active_banners"`
	InactiveBanners    int64 `json:"inactive_banners"`
	RegularBanners     int64 `json:"regular_banners"`
	PromotionalBanners int64 `json:"promotional_banners"`
}

// ==================== 接口定义 ====================

// BannerRepository 横幅仓储接口
type BannerRepository interface {
	Create(ctx context.Context, banner *model.Banner) error
	GetByID(ctx context.Context, id int64) (*model.Banner, error)
	Update(ctx context.Context, banner *model.Banner) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, filter BannerFilter) ([]model.Banner, int64, error)
	ListActiveByType(ctx context.Context, bannerType string, limit int) ([]model.Banner, error)

	BulkUpdate(ctx context.Context, ids []int64, fields map[string]interface{}) (int64, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)

	Stats(ctx context.Context) (*BannerStats, error)
}

// ==================== 仓储实现 ====================

type bannerRepo struct {
	db *gorm.DB
}

// NewBannerRepository 创建横幅仓储
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepo{db: db}
}

func (r *bannerRepo) Create(ctx context.Context, banner *model.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepo) GetByID(ctx context.Context, id int64) (*model.Banner, error) {
	var banner model.Banner
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Product").
		First(&banner, id).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepo) Update(ctx context.Context, banner *model.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *bannerRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, id).Error
}

func (r *bannerRepo) List(ctx context.Context, filter BannerFilter) ([]model.Banner, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Banner{})

	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, bannerSortable))

	page, limit := normalizePage(filter.Page, filter.Limit)
	var banners []model.Banner
	err := query.
		Preload("Creator").
		Preload("Product").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&banners).Error
	if err != nil {
		return nil, 0, err
	}

	return banners, total, nil
}

func (r *bannerRepo) ListActiveByType(ctx context.Context, bannerType string, limit int) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).
		Where("status = ? AND type = ?", model.BannerStatusActive, bannerType).
		Order("created_at DESC").
		Limit(limit).
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) BulkUpdate(ctx context.Context, ids []int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Banner{}).Where("id IN ?", ids).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *bannerRepo) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Banner{})
	return result.RowsAffected, result.Error
}

func (r *bannerRepo) Stats(ctx context.Context) (*BannerStats, error) {
	stats := &BannerStats{}
	err := r.db.WithContext(ctx).Model(&model.Banner{}).
		Select(`COUNT(*) AS total_banners,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_banners,
			COALESCE(SUM(CASE WHEN status = 'inactive' THEN 1 ELSE 0 END), 0) AS inactive_banners,
			COALESCE(SUM(CASE WHEN type = 'regular' THEN 1 ELSE 0 END), 0) AS regular_banners,
			COALESCE(SUM(CASE WHEN type = 'promotional' THEN 1 ELSE 0 END), 0) AS promotional_banners`).
		Scan(stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
