package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// BannerService 横幅管理
type BannerService struct {
	bannerRepo  repository.BannerRepository
	productRepo repository.ProductRepository
}

func NewBannerService(bannerRepo repository.BannerRepository, productRepo repository.ProductRepository) *BannerService {
	return &BannerService{
		bannerRepo:  bannerRepo,
		productRepo: productRepo,
	}
}

// BannerInput 创建/更新入参
type BannerInput struct {
	Title     string
	Image     string
	Type      *string
	Status    *string
	ProductID *int64
	// ProductProvided 区分"未传 product_id"与"显式清空"
	ProductProvided bool
}

// ==================== 增删改 ====================

// Create 创建横幅，引用的商品必须存在
func (s *BannerService) Create(ctx context.Context, input BannerInput) (*model.Banner, error) {
	banner := &model.Banner{
		Title:  input.Title,
		Image:  input.Image,
		Type:   model.BannerTypeRegular,
		Status: model.BannerStatusActive,
	}
	if input.Type != nil {
		banner.Type = *input.Type
	}
	if input.Status != nil {
		banner.Status = *input.Status
	}
	if input.ProductID != nil {
		if _, err := s.productRepo.GetByID(ctx, *input.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		banner.ProductID = input.ProductID
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return s.bannerRepo.GetByID(ctx, banner.ID)
}

// Update 更新横幅
func (s *BannerService) Update(ctx context.Context, id int64, input BannerInput) (*model.Banner, error) {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Title != "" {
		banner.Title = input.Title
	}
	if input.Image != "" {
		banner.Image = input.Image
	}
	if input.Type != nil {
		banner.Type = *input.Type
	}
	if input.Status != nil {
		banner.Status = *input.Status
	}
	if input.ProductProvided {
		if input.ProductID != nil {
			if _, err := s.productRepo.GetByID(ctx, *input.ProductID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrNotFound
				}
				return nil, err
			}
		}
		banner.ProductID = input.ProductID
		banner.Product = nil
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}
	return s.bannerRepo.GetByID(ctx, id)
}

func (s *BannerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.bannerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.bannerRepo.Delete(ctx, id)
}

// ==================== 查询 ====================

func (s *BannerService) Get(ctx context.Context, id int64) (*model.Banner, error) {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) List(ctx context.Context, filter repository.BannerFilter) ([]model.Banner, int64, error) {
	return s.bannerRepo.List(ctx, filter)
}

// ListActive 展示端查询，只返回指定类型的启用横幅
func (s *BannerService) ListActive(ctx context.Context, bannerType string, limit int) ([]model.Banner, error) {
	if bannerType != model.BannerTypeRegular && bannerType != model.BannerTypePromotional {
		return nil, ErrInvalidAction
	}
	return s.bannerRepo.ListActiveByType(ctx, bannerType, limit)
}

// ==================== 批量与统计 ====================

// Bulk 批量更新或删除
func (s *BannerService) Bulk(ctx context.Context, action string, ids []int64, data map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInvalidAction
	}

	switch action {
	case "activate":
		return s.bannerRepo.BulkUpdate(ctx, ids, map[string]interface{}{"status": model.BannerStatusActive})
	case "deactivate":
		return s.bannerRepo.BulkUpdate(ctx, ids, map[string]interface{}{"status": model.BannerStatusInactive})
	case "update":
		if len(data) == 0 {
			return 0, ErrInvalidAction
		}
		return s.bannerRepo.BulkUpdate(ctx, ids, data)
	case "delete":
		return s.bannerRepo.BulkDelete(ctx, ids)
	default:
		return 0, ErrInvalidAction
	}
}

func (s *BannerService) Stats(ctx context.Context) (*repository.BannerStats, error) {
	return s.bannerRepo.Stats(ctx)
}
