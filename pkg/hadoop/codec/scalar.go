package codec

import (
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/inf.v0"

	"github.com/lk2023060901/datameta-go/pkg/datameta"
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// ZoneUTC 是旧版日期格式中唯一使用的时区键。
const ZoneUTC int32 = 0

// WriteText 以 Text 格式写出 s。
func WriteText(out stream.DataOutput, s string) error {
	return stream.WriteString(out, s)
}

// ReadText 读取一个 Text 格式的字符串。
func ReadText(in stream.DataInput) (string, error) {
	return stream.ReadString(in)
}

// WriteDttm 以旧版格式写出时间：VInt(ZoneUTC) + VLong(毫秒时间戳)。
func WriteDttm(out stream.DataOutput, t time.Time) error {
	if err := stream.WriteVInt(out, ZoneUTC); err != nil {
		return err
	}
	return stream.WriteVLong(out, datameta.ToMillis(t))
}

// ReadDttm 读取旧版格式的时间，时区键被读出后丢弃，结果总是 UTC。
func ReadDttm(in stream.DataInput) (time.Time, error) {
	if _, err := stream.ReadVInt(in); err != nil {
		return time.Time{}, err
	}
	return ReadDttmUtc(in)
}

// WriteDttmUtc 以 UTC 格式写出时间：VLong(毫秒时间戳)。
func WriteDttmUtc(out stream.DataOutput, t time.Time) error {
	return stream.WriteVLong(out, datameta.ToMillis(t))
}

// ReadDttmUtc 读取 UTC 格式的时间。
func ReadDttmUtc(in stream.DataInput) (time.Time, error) {
	ms, err := stream.ReadVLong(in)
	if err != nil {
		return time.Time{}, err
	}
	return datameta.FromMillis(ms), nil
}

// WriteDecimal 以十进制字符串（保留 scale）的 Text 格式写出 d。
// d 为 nil 时返回 ErrValueAbsent，可选字段的缺失应通过 null 标记位表达。
func WriteDecimal(out stream.DataOutput, d *inf.Dec) error {
	if d == nil {
		return merr.WrapErrValueAbsent("decimal")
	}
	return WriteText(out, d.String())
}

// ReadDecimal 读取一个十进制数。
func ReadDecimal(in stream.DataInput) (*inf.Dec, error) {
	s, err := ReadText(in)
	if err != nil {
		return nil, err
	}
	return ParseDecimal(s)
}

// ParseDecimal 将十进制字符串解析为 *inf.Dec，scale 与字符串中的小数位数一致。
// 支持 "1E-7"、"1.5E+3" 这类指数形式，结果的 scale 为小数位数减去指数。
func ParseDecimal(s string) (*inf.Dec, error) {
	mantissa, exp := s, int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		mantissa = s[:i]
		exp, err = strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return nil, merr.WrapErrMalformedDecimal(s)
		}
	}
	d, ok := new(inf.Dec).SetString(mantissa)
	if !ok {
		return nil, merr.WrapErrMalformedDecimal(s)
	}
	if exp == 0 {
		return d, nil
	}
	scale := int64(d.Scale()) - exp
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return nil, merr.WrapErrMalformedDecimal(s, "exponent out of range")
	}
	return inf.NewDecBig(d.UnscaledBig(), inf.Scale(scale)), nil
}
