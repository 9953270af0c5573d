package datameta

import (
	"strings"
	"time"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

const (
	isoLayout    = "2006-01-02T15:04:05"
	isoOutLayout = "2006-01-02T15:04:05.999"
	utcSuffix    = "UTC"
)

// FromMillis 将 Unix 毫秒时间戳转换为 UTC 时间。
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ToMillis 返回 t 的 Unix 毫秒时间戳，亚毫秒部分被截断。
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// ParseISOUTC 解析 "2006-01-02T15:04:05" 形式的 UTC 时间，
// 末尾的 "Z" 或 "UTC" 可有可无，秒后可以带小数部分。
func ParseISOUTC(s string) (time.Time, error) {
	raw := s
	s = strings.TrimSuffix(s, "Z")
	s = strings.TrimSuffix(s, utcSuffix)
	t, err := time.ParseInLocation(isoLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, merr.WrapErrParameterInvalid("yyyy-MM-ddTHH:mm:ss[UTC]", raw, err.Error())
	}
	return t, nil
}

// FormatISOUTC 将 t 格式化为 "2006-01-02T15:04:05UTC"，毫秒不为 0 时保留毫秒。
func FormatISOUTC(t time.Time) string {
	return t.UTC().Format(isoOutLayout) + utcSuffix
}
