package model

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusCancelled},
	}
	for _, c := range allowed {
		if !CanTransitionOrderStatus(c.from, c.to) {
			t.Errorf("%s → %s 应允许", c.from, c.to)
		}
	}

	denied := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusProcessing, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusPending},
	}
	for _, c := range denied {
		if CanTransitionOrderStatus(c.from, c.to) {
			t.Errorf("%s → %s 应拒绝", c.from, c.to)
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	if !CanTransitionPaymentStatus(PaymentStatusPending, PaymentStatusPaid) {
		t.Errorf("pending → paid 应允许")
	}
	if !CanTransitionPaymentStatus(PaymentStatusPaid, PaymentStatusPartiallyRefunded) {
		t.Errorf("paid → partially_refunded 应允许")
	}
	if !CanTransitionPaymentStatus(PaymentStatusFailed, PaymentStatusPending) {
		t.Errorf("failed → pending 应允许重试")
	}
	if CanTransitionPaymentStatus(PaymentStatusPending, PaymentStatusRefunded) {
		t.Errorf("pending → refunded 应拒绝")
	}
	if CanTransitionPaymentStatus(PaymentStatusRefunded, PaymentStatusPaid) {
		t.Errorf("refunded 是终态")
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		if !IsValidOrderStatus(s) {
			t.Errorf("%s 应为合法状态", s)
		}
	}
	if IsValidOrderStatus("archived") {
		t.Errorf("archived 不是合法状态")
	}
}

func TestDefaultPermissions(t *testing.T) {
	admin := DefaultPermissions(RoleAdmin)
	if !admin.Settings || !admin.CanDelete {
		t.Errorf("admin 应有全量权限: %+v", admin)
	}

	manager := DefaultPermissions(RoleManager)
	if manager.Settings || !manager.CanDelete {
		t.Errorf("manager 可删但不可改设置: %+v", manager)
	}

	viewer := DefaultPermissions(RoleViewer)
	if viewer.CanCreate || viewer.CanEdit || !viewer.CanView {
		t.Errorf("viewer 只读: %+v", viewer)
	}

	staff := DefaultPermissions(RoleStaff)
	if staff.Customers || staff.Banners || staff.CanCreate {
		t.Errorf("staff 权限错误: %+v", staff)
	}
}

func TestProductIsLowStock(t *testing.T) {
	p := Product{Stock: LowStockThreshold - 1}
	if !p.IsLowStock() {
		t.Errorf("库存 %d 应判为低库存", p.Stock)
	}
	p.Stock = LowStockThreshold
	if p.IsLowStock() {
		t.Errorf("库存 %d 不应判为低库存", p.Stock)
	}
}
