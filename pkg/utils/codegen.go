package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber 生成订单号：ORD-YYMMDD-XXXXXX
// 随机后缀取自 UUID，碰撞概率可以忽略；库级唯一索引兜底
func GenerateOrderNumber() string {
	now := time.Now()
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("060102"), random)
}

// GenerateSKU 生成默认 SKU：SKU-<毫秒时间戳>-<随机9位>
func GenerateSKU() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("SKU-%d-%s", time.Now().UnixMilli(), random)
}
