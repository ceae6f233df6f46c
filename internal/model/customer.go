package model

import (
	"time"

	"gorm.io/datatypes"
)

// 客户状态
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// CustomerAddress 客户默认地址
type CustomerAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// Customer 店铺客户，与订单通过 email 关联而非外键
type Customer struct {
	BaseModel
	Name   string `gorm:"size:100;not null;index" json:"name"`
	Email  string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone  string `gorm:"size:30" json:"phone"`
	Avatar string `gorm:"size:512" json:"avatar"`

	Address datatypes.JSONType[CustomerAddress] `gorm:"type:jsonb" json:"address"`

	Status string `gorm:"size:20;default:active;index" json:"status"`

	TotalOrders   int        `gorm:"default:0" json:"total_orders"`
	TotalSpent    float64    `gorm:"default:0" json:"total_spent"`
	LastOrderDate *time.Time `json:"last_order_date"`

	Notes string `gorm:"type:text" json:"notes"`
}

func (Customer) TableName() string {
	return "customers"
}
