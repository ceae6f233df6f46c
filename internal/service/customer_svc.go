package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// CustomerService 客户管理
type CustomerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// CustomerInput 创建/更新入参，nil 字段不更新
type CustomerInput struct {
	Name    string
	Email   string
	Phone   *string
	Avatar  *string
	Address *model.CustomerAddress
	Status  *string
	Notes   *string
}

// CustomerDetail 客户详情，带订单历史
type CustomerDetail struct {
	Customer *model.Customer `json:"customer"`
	Orders   []model.Order   `json:"orders"`
}

// ==================== 增删改 ====================

// Create 创建客户，邮箱重复返回 ErrDuplicateEmail
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*model.Customer, error) {
	if _, err := s.customerRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := &model.Customer{
		Name:   input.Name,
		Email:  input.Email,
		Status: model.CustomerStatusActive,
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Avatar != nil {
		customer.Avatar = *input.Avatar
	}
	if input.Address != nil {
		customer.Address = datatypes.NewJSONType(*input.Address)
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update 更新客户，改邮箱时校验唯一性
func (s *CustomerService) Update(ctx context.Context, id int64, input CustomerInput) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Email != "" && input.Email != customer.Email {
		if existing, err := s.customerRepo.GetByEmail(ctx, input.Email); err == nil && existing.ID != id {
			return nil, ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		customer.Email = input.Email
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Avatar != nil {
		customer.Avatar = *input.Avatar
	}
	if input.Address != nil {
		customer.Address = datatypes.NewJSONType(*input.Address)
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// ==================== 查询 ====================

// Get 客户详情，附带按 email 关联的订单历史
func (s *CustomerService) Get(ctx context.Context, id int64) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	orders, err := s.orderRepo.ListByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{Customer: customer, Orders: orders}, nil
}

func (s *CustomerService) List(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, int64, error) {
	return s.customerRepo.List(ctx, filter)
}

func (s *CustomerService) Stats(ctx context.Context) (*repository.CustomerOverview, error) {
	return s.customerRepo.Overview(ctx)
}
