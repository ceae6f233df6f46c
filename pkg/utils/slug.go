package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 从显示名称派生 URL 安全的 slug
// 规则：转小写，非字母数字的连续串折叠为单个连字符，去掉首尾连字符
// "Men's Shoes!!" -> "men-s-shoes"
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
