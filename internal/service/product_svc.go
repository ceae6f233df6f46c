package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/pkg/utils"
)

// ProductService 商品管理
type ProductService struct {
	productRepo     repository.ProductRepository
	notificationSvc *NotificationService
}

func NewProductService(productRepo repository.ProductRepository, notificationSvc *NotificationService) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		notificationSvc: notificationSvc,
	}
}

// ==================== 输入 ====================

// ProductInput 创建/更新入参
type ProductInput struct {
	Name          string
	Description   *string
	CategoryID    int64
	SubCategoryID int64
	Price         *float64
	Stock         *int
	Image         *string
	Images        []string
	Status        *string
	SKU           *string
	Weight        *float64
	Dimensions    *model.Dimensions
	Tags          []string
	Featured      *bool
	Variants      []model.ProductVariant
}

// ==================== 增删改 ====================

// Create 创建商品，未提供 SKU 时自动生成；SKU 冲突返回 ErrDuplicateSKU
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Status:        model.ProductStatusActive,
	}

	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.Dimensions != nil {
		product.Dimensions = datatypes.NewJSONType(*input.Dimensions)
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Variants != nil {
		product.Variants = input.Variants
	}

	if input.SKU != nil && *input.SKU != "" {
		product.SKU = *input.SKU
		// 应用层先查一次给出友好错误；并发窗口由唯一索引兜底
		if _, err := s.productRepo.GetBySKU(ctx, product.SKU); err == nil {
			return nil, ErrDuplicateSKU
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		product.SKU = utils.GenerateSKU()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// Update 更新商品，只应用提供的字段
// 更新后库存低于阈值时同步触发低库存通知（尽力而为，不影响本次更新结果）
func (s *ProductService) Update(ctx context.Context, id int64, input ProductInput, operatorID int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.CategoryID > 0 {
		product.CategoryID = input.CategoryID
		product.Category = nil
	}
	if input.SubCategoryID > 0 {
		product.SubCategoryID = input.SubCategoryID
		product.SubCategory = nil
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.Dimensions != nil {
		product.Dimensions = datatypes.NewJSONType(*input.Dimensions)
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Variants != nil {
		product.Variants = input.Variants
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if product.IsLowStock() && operatorID > 0 {
		s.notificationSvc.NotifyLowStock(ctx, product, operatorID)
	}

	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ==================== 查询 ====================

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}

// ==================== 批量与统计 ====================

// Bulk 批量更新或删除，整批一起成败
func (s *ProductService) Bulk(ctx context.Context, action string, ids []int64, data map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInvalidAction
	}

	switch action {
	case "update":
		if len(data) == 0 {
			return 0, ErrInvalidAction
		}
		return s.productRepo.BulkUpdate(ctx, ids, data)
	case "delete":
		return s.productRepo.BulkDelete(ctx, ids)
	default:
		return 0, ErrInvalidAction
	}
}

func (s *ProductService) Stats(ctx context.Context) (*repository.ProductOverview, error) {
	return s.productRepo.Overview(ctx)
}
