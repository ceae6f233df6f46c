package utils

import (
	"regexp"
	"testing"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{6}-[0-9A-F]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		num := GenerateOrderNumber()
		if !pattern.MatchString(num) {
			t.Fatalf("订单号格式错误: %q", num)
		}
		if seen[num] {
			t.Fatalf("订单号重复: %q", num)
		}
		seen[num] = true
	}
}

func TestGenerateSKU(t *testing.T) {
	pattern := regexp.MustCompile(`^SKU-\d+-[0-9a-f]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sku := GenerateSKU()
		if !pattern.MatchString(sku) {
			t.Fatalf("SKU 格式错误: %q", sku)
		}
		if seen[sku] {
			t.Fatalf("SKU 重复: %q", sku)
		}
		seen[sku] = true
	}
}
