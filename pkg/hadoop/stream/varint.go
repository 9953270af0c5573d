package stream

import (
	"math"
	"math/bits"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// 变长整数的首字节区间（按有符号字节解释）：
//
//	[-112, 127]   单字节，值即本身
//	[-120, -113]  正数，后跟 1~8 个大端字节
//	[-128, -121]  负数，后跟 1~8 个大端字节（存储的是按位取反后的值）
const (
	vIntSingleMin  = -112
	vIntSingleMax  = 127
	vIntPosMarker  = -112
	vIntNegMarker  = -120
	maxVLongLength = 9
)

// WriteVLong 以 Hadoop WritableUtils.writeVLong 的格式写出 i。
func WriteVLong(out DataOutput, i int64) error {
	if i >= vIntSingleMin && i <= vIntSingleMax {
		return out.WriteByte(byte(int8(i)))
	}

	marker := vIntPosMarker
	if i < 0 {
		i ^= -1
		marker = vIntNegMarker
	}
	n := magnitudeBytes(i)
	marker -= n

	var buf [maxVLongLength]byte
	buf[0] = byte(int8(marker))
	for idx := 0; idx < n; idx++ {
		shift := uint(n-1-idx) * 8
		buf[idx+1] = byte(i >> shift)
	}
	_, err := out.Write(buf[:n+1])
	return err
}

// ReadVLong 读取一个由 WriteVLong 写出的值。
func ReadVLong(in DataInput) (int64, error) {
	first, err := in.ReadByte()
	if err != nil {
		return 0, err
	}
	n := DecodeVIntSize(first)
	if n == 1 {
		return int64(int8(first)), nil
	}

	var buf [maxVLongLength - 1]byte
	if err := in.ReadFully(buf[:n-1]); err != nil {
		return 0, err
	}
	var i int64
	for _, b := range buf[:n-1] {
		i = i<<8 | int64(b)
	}
	if IsNegativeVInt(first) {
		return i ^ -1, nil
	}
	return i, nil
}

// WriteVInt 以 Hadoop WritableUtils.writeVInt 的格式写出 i，与 WriteVLong 线格式相同。
func WriteVInt(out DataOutput, i int32) error {
	return WriteVLong(out, int64(i))
}

// ReadVInt 读取一个变长整数，超出 int32 范围时返回 ErrValueOverflow。
func ReadVInt(in DataInput) (int32, error) {
	n, err := ReadVLong(in)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, merr.WrapErrValueOverflow("vint", n)
	}
	return int32(n), nil
}

// DecodeVIntSize 根据首字节返回整个变长整数占用的字节数（含首字节）。
// first 按有符号字节解释。
func DecodeVIntSize(first byte) int {
	v := int(int8(first))
	switch {
	case v >= vIntSingleMin:
		return 1
	case v < vIntNegMarker:
		return -119 - v
	default:
		return -111 - v
	}
}

// IsNegativeVInt 根据首字节判断变长整数是否为负数。
func IsNegativeVInt(first byte) bool {
	v := int(int8(first))
	return v < vIntNegMarker || (v >= vIntSingleMin && v < 0)
}

// VLongSize 返回 i 编码后占用的字节数。
func VLongSize(i int64) int {
	if i >= vIntSingleMin && i <= vIntSingleMax {
		return 1
	}
	if i < 0 {
		i ^= -1
	}
	return magnitudeBytes(i) + 1
}

// magnitudeBytes 返回非负数 i 去掉前导零字节后的字节数。
func magnitudeBytes(i int64) int {
	return (bits.Len64(uint64(i)) + 7) / 8
}
