package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/pkg/utils"
)

// OrderService 订单管理
type OrderService struct {
	orderRepo       repository.OrderRepository
	customerRepo    repository.CustomerRepository
	notificationSvc *NotificationService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	notificationSvc *NotificationService,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		notificationSvc: notificationSvc,
	}
}

// ==================== 输入 ====================

// OrderItemInput 下单商品行，金额由服务端计算
type OrderItemInput struct {
	Name     string
	Price    float64
	Quantity int
	Image    string
	SKU      string
}

// OrderCreateInput 创建订单入参
type OrderCreateInput struct {
	UserName        string
	UserEmail       string
	Items           []OrderItemInput
	ShippingAddress model.ShippingAddress
	ShippingCharge  float64
	PaymentMethod   string
	Notes           string
}

// OrderUpdateInput 更新订单入参，nil 字段保持不变
type OrderUpdateInput struct {
	Status            *string
	PaymentStatus     *string
	TrackingNumber    *string
	EstimatedDelivery *time.Time
	Notes             *string
}

// ==================== 创建 ====================

// Create 创建订单
// 订单号与各项金额全部由服务端计算，忽略客户端传入的任何金额；
// 同步维护客户累计消费，并给操作人发新订单通知
func (s *OrderService) Create(ctx context.Context, input OrderCreateInput, operatorID int64) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrInvalidAction
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	var subtotal float64
	for _, in := range input.Items {
		lineTotal := round2(in.Price * float64(in.Quantity))
		items = append(items, model.OrderItem{
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
			Total:    lineTotal,
			Image:    in.Image,
			SKU:      in.SKU,
		})
		subtotal += lineTotal
	}
	subtotal = round2(subtotal)

	order := &model.Order{
		OrderNumber:     utils.GenerateOrderNumber(),
		UserName:        input.UserName,
		UserEmail:       input.UserEmail,
		Items:           items,
		ShippingAddress: datatypes.NewJSONType(input.ShippingAddress),
		Subtotal:        subtotal,
		ShippingCharge:  input.ShippingCharge,
		Total:           round2(subtotal + input.ShippingCharge),
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMethod:   model.PaymentMethodCreditCard,
		Notes:           input.Notes,
	}
	if input.PaymentMethod != "" {
		order.PaymentMethod = input.PaymentMethod
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.syncCustomer(ctx, order)

	if operatorID > 0 {
		s.notificationSvc.NotifyNewOrder(ctx, order, operatorID)
	}

	return order, nil
}

// syncCustomer 下单后累加客户消费档案，不存在则按订单信息建档
// 尽力而为：失败只记日志，不影响订单创建
func (s *OrderService) syncCustomer(ctx context.Context, order *model.Order) {
	now := time.Now()

	customer, err := s.customerRepo.GetByEmail(ctx, order.UserEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = &model.Customer{
			Name:          order.UserName,
			Email:         order.UserEmail,
			Status:        model.CustomerStatusActive,
			TotalOrders:   1,
			TotalSpent:    order.Total,
			LastOrderDate: &now,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			log.Printf("同步客户档案失败 email=%s: %v", order.UserEmail, err)
		}
		return
	}
	if err != nil {
		log.Printf("同步客户档案失败 email=%s: %v", order.UserEmail, err)
		return
	}

	customer.TotalOrders++
	customer.TotalSpent = round2(customer.TotalSpent + order.Total)
	customer.LastOrderDate = &now
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		log.Printf("同步客户档案失败 email=%s: %v", order.UserEmail, err)
	}
}

// ==================== 更新 ====================

// Update 更新订单
// 状态与支付状态都按迁移表校验，非法取值返回 ErrInvalidStatus，
// 合法取值但不可达返回 ErrIllegalTransition；
// 进入 delivered 时自动盖 DeliveredAt 时间戳
func (s *OrderService) Update(ctx context.Context, id int64, input OrderUpdateInput) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Status != nil && *input.Status != order.Status {
		if !model.IsValidOrderStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		if !model.CanTransitionOrderStatus(order.Status, *input.Status) {
			return nil, ErrIllegalTransition
		}
		order.Status = *input.Status
		if order.Status == model.OrderStatusDelivered && order.DeliveredAt == nil {
			now := time.Now()
			order.DeliveredAt = &now
		}
	}

	if input.PaymentStatus != nil && *input.PaymentStatus != order.PaymentStatus {
		if !model.IsValidPaymentStatus(*input.PaymentStatus) {
			return nil, ErrInvalidStatus
		}
		if !model.CanTransitionPaymentStatus(order.PaymentStatus, *input.PaymentStatus) {
			return nil, ErrIllegalTransition
		}
		order.PaymentStatus = *input.PaymentStatus
	}

	if input.TrackingNumber != nil {
		order.TrackingNumber = *input.TrackingNumber
	}
	if input.EstimatedDelivery != nil {
		order.EstimatedDelivery = input.EstimatedDelivery
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// ==================== 查询 ====================

func (s *OrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
	return s.orderRepo.List(ctx, filter)
}

// ==================== 统计 ====================

func (s *OrderService) Stats(ctx context.Context) (*repository.OrderOverview, error) {
	return s.orderRepo.Overview(ctx)
}

func (s *OrderService) DailyStats(ctx context.Context, days int) ([]repository.DailyOrderStat, error) {
	if days <= 0 {
		days = 7
	}
	return s.orderRepo.DailyStats(ctx, days)
}

// round2 金额保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
