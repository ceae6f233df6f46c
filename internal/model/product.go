package model

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// LowStockThreshold 库存低于该值时触发低库存通知
const LowStockThreshold = 10

// 商品状态
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// ProductVariant 变体快照（颜色/尺码/价格/库存）
type ProductVariant struct {
	Color string  `json:"color,omitempty"`
	Size  string  `json:"size,omitempty"`
	Price float64 `json:"price,omitempty"`
	Stock int     `json:"stock"`
}

// Dimensions 包装尺寸
type Dimensions struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type Product struct {
	BaseModel
	Name        string `gorm:"size:255;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// --- 分类引用（均指向 categories） ---
	CategoryID    int64     `gorm:"not null;index" json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID int64     `gorm:"not null;index" json:"sub_category_id"`
	SubCategory   *Category `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`

	// --- 价格与库存 ---
	Price float64 `gorm:"not null;default:0" json:"price"`
	Stock int     `gorm:"not null;default:0" json:"stock"`

	Image  string         `gorm:"size:512" json:"image"`
	Images pq.StringArray `gorm:"type:text[]" json:"images"`

	Status string `gorm:"size:20;default:active;index" json:"status"`

	// SKU 创建时若未提供则自动生成，库级唯一
	SKU string `gorm:"size:64;uniqueIndex" json:"sku"`

	Weight     float64                        `json:"weight"`
	Dimensions datatypes.JSONType[Dimensions] `gorm:"type:jsonb" json:"dimensions"`

	Tags     pq.StringArray                    `gorm:"type:text[]" json:"tags"`
	Featured bool                              `gorm:"default:false" json:"featured"`
	Variants datatypes.JSONSlice[ProductVariant] `gorm:"type:jsonb" json:"variants"`
}

func (Product) TableName() string {
	return "products"
}

// IsLowStock 是否已低于补货阈值
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
