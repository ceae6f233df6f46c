package repository

import (
	"context"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 过滤条件 ====================

// CustomerFilter 客户查询条件
type CustomerFilter struct {
	Search    string // 匹配姓名/邮箱/电话
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// CustomerOverview 客户统计概览
type CustomerOverview struct {
	TotalCustomers        int64   `json:"total_customers"`
	ActiveCustomers       int64   `json:"active_customers"`
	InactiveCustomers     int64   `json:"inactive_customers"`
	TotalCustomerSpending float64 `json:"total_customer_spending"`
	AvgCustomerSpending   float64 `json:"avg_customer_spending"`
}

// ==================== 接口定义 ====================

// CustomerRepository 客户仓储接口
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int64, error)
	ListTopSpenders(ctx context.Context, limit int) ([]model.Customer, error)
	ListRecent(ctx context.Context, limit int, activeOnly bool) ([]model.Customer, error)

	Overview(ctx context.Context) (*CustomerOverview, error)
}

// ==================== 仓储实现 ====================

type customerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, id).Error
}

func (r *customerRepo) List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Customer{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR phone LIKE ?",
			like, like, like,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, customerSortable))

	page, limit := normalizePage(filter.Page, filter.Limit)
	var customers []model.Customer
	err := query.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r *customerRepo) ListTopSpenders(ctx context.Context, limit int) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).
		Order("total_spent DESC").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepo) ListRecent(ctx context.Context, limit int, activeOnly bool) ([]model.Customer, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if activeOnly {
		query = query.Where("status = ?", model.CustomerStatusActive)
	}

	var customers []model.Customer
	err := query.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Overview(ctx context.Context) (*CustomerOverview, error) {
	overview := &CustomerOverview{}
	err := r.db.WithContext(ctx).Model(&model.Customer{}).
		Select(`COUNT(*) AS total_customers,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_customers,
			COALESCE(SUM(CASE WHEN status = 'inactive' THEN 1 ELSE 0 END), 0) AS inactive_customers,
			COALESCE(SUM(total_spent), 0) AS total_customer_spending,
			COALESCE(AVG(total_spent), 0) AS avg_customer_spending`).
		Scan(overview).Error
	if err != nil {
		return nil, err
	}
	return overview, nil
}
