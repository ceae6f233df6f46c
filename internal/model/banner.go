package model

// Banner 类型
const (
	BannerTypeRegular     = "regular"
	BannerTypePromotional = "promotional"
)

// Banner 状态
const (
	BannerStatusActive   = "active"
	BannerStatusInactive = "inactive"
)

type Banner struct {
	BaseModel
	AuditMixin
	Title string `gorm:"size:255;not null;index" json:"title"`
	Image string `gorm:"size:512;not null" json:"image"`

	Type   string `gorm:"size:20;default:regular;index:idx_type_status" json:"type"`
	Status string `gorm:"size:20;default:active;index:idx_type_status" json:"status"`

	// 可选的推广商品
	ProductID *int64   `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Banner) TableName() string {
	return "banners"
}
