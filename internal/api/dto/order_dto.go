package dto

import (
	"time"

	"marketo_admin_v1/internal/model"
)

// ==================== 请求 DTO ====================

// OrderItemReq 下单商品行
type OrderItemReq struct {
	Name     string   `json:"name" binding:"required,max=255"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity int      `json:"quantity" binding:"required,gte=1"`
	Image    string   `json:"image,omitempty"`
	SKU      string   `json:"sku,omitempty"`
}

// CreateOrderReq 创建订单请求
// 不接收任何金额字段，小计/总价由服务端按行计算
type CreateOrderReq struct {
	UserName        string                `json:"user_name" binding:"required,max=100"`
	UserEmail       string                `json:"user_email" binding:"required,email"`
	Items           []OrderItemReq        `json:"items" binding:"required,min=1,dive"`
	ShippingAddress model.ShippingAddress `json:"shipping_address" binding:"required"`
	ShippingCharge  float64               `json:"shipping_charge" binding:"gte=0"`
	PaymentMethod   string                `json:"payment_method" binding:"omitempty,oneof=credit_card debit_card paypal bank_transfer cash_on_delivery"`
	Notes           string                `json:"notes,omitempty"`
}

// UpdateOrderReq 更新订单请求
type UpdateOrderReq struct {
	Status            *string    `json:"status,omitempty"`
	PaymentStatus     *string    `json:"payment_status,omitempty"`
	TrackingNumber    *string    `json:"tracking_number,omitempty" binding:"omitempty,max=100"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// UpdateOrderStatusReq 单独更新订单状态请求
type UpdateOrderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePaymentStatusReq 单独更新支付状态请求
type UpdatePaymentStatusReq struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
