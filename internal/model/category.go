package model

type Category struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	// --- 层级关系 ---
	// ParentID 为空表示根分类；Level 在创建/换父时重算，不向后代级联
	ParentID *int64    `gorm:"index:idx_parent_active" json:"parent_id"`
	Parent   *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Level    int       `gorm:"default:0" json:"level"`

	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	Image    string `gorm:"size:512" json:"image"`
	IsActive bool   `gorm:"default:true;index:idx_parent_active" json:"is_active"`

	// --- SEO ---
	MetaTitle       string `gorm:"size:255" json:"meta_title"`
	MetaDescription string `gorm:"size:500" json:"meta_description"`
}

func (Category) TableName() string {
	return "categories"
}
