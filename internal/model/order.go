package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 订单状态机 ====================

// 订单状态
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 支付状态
const (
	PaymentStatusPending           = "pending"
	PaymentStatusPaid              = "paid"
	PaymentStatusFailed            = "failed"
	PaymentStatusRefunded          = "refunded"
	PaymentStatusPartiallyRefunded = "partially_refunded"
)

// 支付方式
const (
	PaymentMethodCreditCard     = "credit_card"
	PaymentMethodDebitCard      = "debit_card"
	PaymentMethodPaypal         = "paypal"
	PaymentMethodBankTransfer   = "bank_transfer"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// orderTransitions 订单状态迁移表
// pending → processing → shipped → delivered；cancelled 可从任何非终态进入
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// paymentTransitions 支付状态迁移表
var paymentTransitions = map[string][]string{
	PaymentStatusPending:           {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:              {PaymentStatusRefunded, PaymentStatusPartiallyRefunded},
	PaymentStatusFailed:            {PaymentStatusPending, PaymentStatusPaid},
	PaymentStatusPartiallyRefunded: {PaymentStatusRefunded},
	PaymentStatusRefunded:          {},
}

// IsValidOrderStatus 状态取值是否合法
func IsValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

// IsValidPaymentStatus 支付状态取值是否合法
func IsValidPaymentStatus(status string) bool {
	_, ok := paymentTransitions[status]
	return ok
}

// CanTransitionOrderStatus 判断订单状态迁移是否合法
func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionPaymentStatus 判断支付状态迁移是否合法
func CanTransitionPaymentStatus(from, to string) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ==================== 订单模型 ====================

// OrderItem 下单时的商品快照，不反向引用商品表
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Image    string  `json:"image,omitempty"`
	SKU      string  `json:"sku,omitempty"`
}

// ShippingAddress 收货地址快照
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

type Order struct {
	BaseModel
	// OrderNumber 创建时生成一次，之后不可变
	OrderNumber string `gorm:"size:32;uniqueIndex;not null" json:"order_number"`

	UserName  string `gorm:"size:100;not null" json:"user_name"`
	UserEmail string `gorm:"size:255;not null;index" json:"user_email"`

	Items           datatypes.JSONSlice[OrderItem]      `gorm:"type:jsonb" json:"items"`
	ShippingAddress datatypes.JSONType[ShippingAddress] `gorm:"type:jsonb" json:"shipping_address"`

	// total = subtotal + shipping_charge
	Subtotal       float64 `gorm:"not null;default:0" json:"subtotal"`
	ShippingCharge float64 `gorm:"not null;default:0" json:"shipping_charge"`
	Total          float64 `gorm:"not null;default:0" json:"total"`

	Status        string `gorm:"size:20;default:pending;index" json:"status"`
	PaymentStatus string `gorm:"size:20;default:pending" json:"payment_status"`
	PaymentMethod string `gorm:"size:20;default:credit_card" json:"payment_method"`

	Notes             string     `gorm:"type:text" json:"notes"`
	TrackingNumber    string     `gorm:"size:100" json:"tracking_number"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	DeliveredAt       *time.Time `json:"delivered_at"`
}

func (Order) TableName() string {
	return "orders"
}
