package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// ==================== 测试辅助 ====================

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Order{}, &model.Customer{}, &model.Notification{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCustomerRepository(db),
		newNotificationService(db),
	)
}

func sampleOrderInput() OrderCreateInput {
	return OrderCreateInput{
		UserName:  "Jane Doe",
		UserEmail: "jane@example.com",
		Items: []OrderItemInput{
			{Name: "Mug", Price: 12.5, Quantity: 2},
			{Name: "Poster", Price: 7.99, Quantity: 3},
		},
		ShippingAddress: model.ShippingAddress{
			FullName: "Jane Doe",
			Address:  "1 Main St",
			City:     "Springfield",
			Country:  "US",
		},
		ShippingCharge: 5,
	}
}

// ==================== 单元测试 ====================

func TestOrderService_CreateComputesTotals(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, sampleOrderInput(), 1)
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	// 12.5*2 + 7.99*3 = 48.97
	if order.Subtotal != 48.97 {
		t.Errorf("小计错误: %v", order.Subtotal)
	}
	if order.Total != 53.97 {
		t.Errorf("总价错误: %v", order.Total)
	}

	items := []model.OrderItem(order.Items)
	if len(items) != 2 || items[0].Total != 25 || items[1].Total != 23.97 {
		t.Errorf("商品行金额错误: %+v", items)
	}

	if order.Status != model.OrderStatusPending || order.PaymentStatus != model.PaymentStatusPending {
		t.Errorf("初始状态错误: %s %s", order.Status, order.PaymentStatus)
	}
	if order.PaymentMethod != model.PaymentMethodCreditCard {
		t.Errorf("默认支付方式应为 credit_card, got %s", order.PaymentMethod)
	}
}

func TestOrderService_CreateOrderNumberFormat(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, sampleOrderInput(), 1)
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	pattern := regexp.MustCompile(`^ORD-\d{6}-[0-9A-F]{6}$`)
	if !pattern.MatchString(order.OrderNumber) {
		t.Errorf("订单号格式错误: %q", order.OrderNumber)
	}
}

func TestOrderService_CreateSyncsCustomer(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	// 第一单建档
	first, _ := svc.Create(ctx, sampleOrderInput(), 1)

	var customer model.Customer
	if err := db.Where("email = ?", "jane@example.com").First(&customer).Error; err != nil {
		t.Fatalf("客户未建档: %v", err)
	}
	if customer.TotalOrders != 1 || customer.TotalSpent != first.Total {
		t.Errorf("首单累计错误: orders=%d spent=%v", customer.TotalOrders, customer.TotalSpent)
	}
	if customer.LastOrderDate == nil {
		t.Errorf("最近下单时间未记录")
	}

	// 第二单累加
	second, _ := svc.Create(ctx, sampleOrderInput(), 1)
	db.Where("email = ?", "jane@example.com").First(&customer)
	if customer.TotalOrders != 2 {
		t.Errorf("单量应累加到 2, got %d", customer.TotalOrders)
	}
	want := first.Total + second.Total
	if customer.TotalSpent != want {
		t.Errorf("消费应累加到 %v, got %v", want, customer.TotalSpent)
	}
}

func TestOrderService_CreateEmitsNotification(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	svc.Create(ctx, sampleOrderInput(), 5)

	var n model.Notification
	if err := db.Where("user_id = ?", 5).First(&n).Error; err != nil {
		t.Fatalf("新订单通知未写入: %v", err)
	}
	if n.Type != model.NotificationTypeNewOrder {
		t.Errorf("通知类型错误: %s", n.Type)
	}
}

func TestOrderService_CreateZeroPriceItem(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	// 赠品行单价为 0，按正常行参与合计
	input := sampleOrderInput()
	input.Items = []OrderItemInput{
		{Name: "Mug", Price: 12.5, Quantity: 2},
		{Name: "Free Sticker", Price: 0, Quantity: 3},
	}

	order, err := svc.Create(ctx, input, 1)
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	if order.Subtotal != 25 {
		t.Errorf("小计错误: %v", order.Subtotal)
	}
	if order.Total != 30 {
		t.Errorf("总价错误: %v", order.Total)
	}

	items := []model.OrderItem(order.Items)
	if len(items) != 2 || items[1].Total != 0 {
		t.Errorf("赠品行合计应为 0: %+v", items)
	}
}

func TestOrderService_CreateRejectsEmptyItems(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)

	input := sampleOrderInput()
	input.Items = nil
	if _, err := svc.Create(context.Background(), input, 1); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("空订单应报 ErrInvalidAction, got %v", err)
	}
}

func TestOrderService_StatusTransitions(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	order, _ := svc.Create(ctx, sampleOrderInput(), 1)

	// 跳级推进被拒绝
	shipped := model.OrderStatusShipped
	if _, err := svc.Update(ctx, order.ID, OrderUpdateInput{Status: &shipped}); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("pending→shipped 应被拒绝, got %v", err)
	}

	// 逐级推进
	for _, next := range []string{
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
	} {
		status := next
		updated, err := svc.Update(ctx, order.ID, OrderUpdateInput{Status: &status})
		if err != nil {
			t.Fatalf("推进到 %s 失败: %v", next, err)
		}
		if updated.Status != next {
			t.Errorf("状态应为 %s, got %s", next, updated.Status)
		}
	}

	// 送达时间自动盖章
	final, _ := svc.Get(ctx, order.ID)
	if final.DeliveredAt == nil {
		t.Errorf("delivered 状态应记录送达时间")
	}

	// 终态不可再动
	cancelled := model.OrderStatusCancelled
	if _, err := svc.Update(ctx, order.ID, OrderUpdateInput{Status: &cancelled}); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("delivered→cancelled 应被拒绝, got %v", err)
	}

	// 非法取值
	bogus := "teleported"
	if _, err := svc.Update(ctx, order.ID, OrderUpdateInput{Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("非法状态应报 ErrInvalidStatus, got %v", err)
	}
}

func TestOrderService_CancelFromNonTerminal(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	order, _ := svc.Create(ctx, sampleOrderInput(), 1)

	processing := model.OrderStatusProcessing
	svc.Update(ctx, order.ID, OrderUpdateInput{Status: &processing})

	cancelled := model.OrderStatusCancelled
	updated, err := svc.Update(ctx, order.ID, OrderUpdateInput{Status: &cancelled})
	if err != nil {
		t.Fatalf("processing→cancelled 应允许: %v", err)
	}
	if updated.Status != model.OrderStatusCancelled {
		t.Errorf("状态应为 cancelled, got %s", updated.Status)
	}
}

func TestOrderService_PaymentTransitions(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	order, _ := svc.Create(ctx, sampleOrderInput(), 1)

	// pending → refunded 不可达
	refunded := model.PaymentStatusRefunded
	if _, err := svc.Update(ctx, order.ID, OrderUpdateInput{PaymentStatus: &refunded}); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("pending→refunded 应被拒绝, got %v", err)
	}

	paid := model.PaymentStatusPaid
	if _, err := svc.Update(ctx, order.ID, OrderUpdateInput{PaymentStatus: &paid}); err != nil {
		t.Fatalf("pending→paid 失败: %v", err)
	}
	if _, err := svc.Update(ctx, order.ID, OrderUpdateInput{PaymentStatus: &refunded}); err != nil {
		t.Fatalf("paid→refunded 失败: %v", err)
	}
}

func TestOrderService_UpdateNotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newOrderService(db)

	status := model.OrderStatusProcessing
	if _, err := svc.Update(context.Background(), 9999, OrderUpdateInput{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, got %v", err)
	}
}
