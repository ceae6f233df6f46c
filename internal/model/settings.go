package model

import "gorm.io/datatypes"

// ValidCurrencies 支持的结算货币
var ValidCurrencies = []string{
	"USD", "EUR", "GBP", "BDT", "INR", "JPY", "CAD", "AUD", "CHF", "CNY",
	"KRW", "SGD", "HKD", "NZD", "SEK", "NOK", "DKK", "PLN", "CZK", "HUF",
	"RUB", "TRY", "BRL", "MXN", "ZAR", "AED", "SAR", "THB", "MYR", "IDR",
	"PHP", "VND",
}

// IsValidCurrency 校验货币代码
func IsValidCurrency(code string) bool {
	for _, c := range ValidCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// 日期/时间格式
var (
	ValidDateFormats = []string{"MM/DD/YYYY", "DD/MM/YYYY", "YYYY-MM-DD"}
	ValidTimeFormats = []string{"12h", "24h"}
)

// NotificationToggles 通知渠道开关
type NotificationToggles struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

// Theme 主题配置
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	DarkMode       bool   `json:"dark_mode"`
}

// Settings 全局配置，库中只存一份，首次读取时懒创建
type Settings struct {
	BaseModel
	SiteName        string `gorm:"size:100;default:'Admin Panel'" json:"site_name"`
	SiteDescription string `gorm:"size:255" json:"site_description"`

	Currency   string `gorm:"size:5;default:USD" json:"currency"`
	Timezone   string `gorm:"size:50;default:UTC" json:"timezone"`
	DateFormat string `gorm:"size:20;default:'MM/DD/YYYY'" json:"date_format"`
	TimeFormat string `gorm:"size:5;default:12h" json:"time_format"`

	ItemsPerPage int `gorm:"default:10" json:"items_per_page"`

	Notifications datatypes.JSONType[NotificationToggles] `gorm:"type:jsonb" json:"notifications"`
	Theme         datatypes.JSONType[Theme]               `gorm:"type:jsonb" json:"theme"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings 默认配置文档
func DefaultSettings() Settings {
	s := Settings{
		SiteName:        "Marketo",
		SiteDescription: "Modern admin panel for e-commerce",
		Currency:        "USD",
		Timezone:        "UTC",
		DateFormat:      "MM/DD/YYYY",
		TimeFormat:      "12h",
		ItemsPerPage:    10,
	}
	s.Notifications = datatypes.NewJSONType(NotificationToggles{Email: true, Push: true})
	s.Theme = datatypes.NewJSONType(Theme{
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#6B7280",
		DarkMode:       false,
	})
	return s
}
