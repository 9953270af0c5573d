package codec

import (
	"time"

	"golang.org/x/exp/constraints"
	"gopkg.in/inf.v0"

	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
)

// 原始类型元素的编解码器。整数使用变长编码，浮点与布尔使用 DataOutput 的定长编码。
var (
	Int32Codec   InOutable[int32]    = InOutableFunc[int32]{ReadFunc: stream.ReadVInt, WriteFunc: stream.WriteVInt}
	Int64Codec   InOutable[int64]    = InOutableFunc[int64]{ReadFunc: stream.ReadVLong, WriteFunc: stream.WriteVLong}
	BoolCodec    InOutable[bool]     = InOutableFunc[bool]{ReadFunc: stream.DataInput.ReadBoolean, WriteFunc: stream.DataOutput.WriteBoolean}
	Float32Codec InOutable[float32]  = InOutableFunc[float32]{ReadFunc: stream.DataInput.ReadFloat, WriteFunc: stream.DataOutput.WriteFloat}
	Float64Codec InOutable[float64]  = InOutableFunc[float64]{ReadFunc: stream.DataInput.ReadDouble, WriteFunc: stream.DataOutput.WriteDouble}
	StringCodec  InOutable[string]   = InOutableFunc[string]{ReadFunc: ReadText, WriteFunc: WriteText}
	DecimalCodec InOutable[*inf.Dec] = InOutableFunc[*inf.Dec]{ReadFunc: ReadDecimal, WriteFunc: WriteDecimal}

	// DateTimeCodec 使用旧版格式 VInt(ZoneUTC) + VLong(毫秒)。
	DateTimeCodec    InOutable[time.Time] = InOutableFunc[time.Time]{ReadFunc: ReadDttm, WriteFunc: WriteDttm}
	// DateTimeUTCCodec 使用 UTC 格式 VLong(毫秒)。
	DateTimeUTCCodec InOutable[time.Time] = InOutableFunc[time.Time]{ReadFunc: ReadDttmUtc, WriteFunc: WriteDttmUtc}
)

// DateTimeCodecOf 返回指定格式的日期编解码器。
func DateTimeCodecOf(form DateTimeForm) InOutable[time.Time] {
	if form == DateTimeUTC {
		return DateTimeUTCCodec
	}
	return DateTimeCodec
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

type decimalSetCodec struct {
	opts Options
}

// DecimalSetOf 返回 DecimalSet 的编解码器，启用 CanonicalSetOrder 时按数值升序写出。
func DecimalSetOf(opts ...Option) InOutable[DecimalSet] {
	return decimalSetCodec{opts: buildOptions(opts...)}
}

func (c decimalSetCodec) Write(out stream.DataOutput, set DecimalSet) error {
	if set == nil {
		return nil
	}
	var vals []*inf.Dec
	if c.opts.CanonicalSetOrder {
		vals = set.Sorted()
	} else {
		vals = set.Collect()
	}
	return writeElements(out, DecimalCodec, "set", vals)
}

func (c decimalSetCodec) Read(in stream.DataInput) (DecimalSet, error) {
	return c.ReadVal(in, nil)
}

func (c decimalSetCodec) ReadVal(in stream.DataInput, val DecimalSet) (DecimalSet, error) {
	result := val
	err := readElements(in, DecimalCodec, "set", &c.opts,
		func(n int) {
			if result == nil {
				result = make(DecimalSet, n)
			} else {
				clear(result)
			}
		},
		func(v *inf.Dec) { result.Insert(v) })
	if err != nil {
		return nil, err
	}
	return result, nil
}
