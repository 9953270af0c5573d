package stream

import (
	"math"
	"unicode/utf8"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// 一次性分配的字符串长度上限，超过后分块读取，避免被恶意长度前缀撑爆内存。
const textChunkSize = 64 * 1024

// WriteString 以 Hadoop Text.writeString 的格式写出 s：VInt(UTF-8 字节数) + UTF-8 字节。
func WriteString(out DataOutput, s string) error {
	if len(s) > math.MaxInt32 {
		return merr.WrapErrMalformedLengthRange("text", int64(len(s)), math.MaxInt32)
	}
	if err := WriteVInt(out, int32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := out.Write([]byte(s))
	return err
}

// ReadString 读取一个由 WriteString 写出的字符串。
func ReadString(in DataInput) (string, error) {
	length, err := ReadVInt(in)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", merr.WrapErrMalformedLength("text", int64(length))
	}
	if length == 0 {
		return "", nil
	}

	var data []byte
	if length <= textChunkSize {
		data = make([]byte, length)
		if err := in.ReadFully(data); err != nil {
			return "", err
		}
	} else {
		data = make([]byte, 0, textChunkSize)
		for remain := int(length); remain > 0; {
			n := min(remain, textChunkSize)
			start := len(data)
			data = append(data, make([]byte, n)...)
			if err := in.ReadFully(data[start:]); err != nil {
				return "", err
			}
			remain -= n
		}
	}

	if !utf8.Valid(data) {
		return "", merr.WrapErrMalformedText(len(data))
	}
	return string(data), nil
}
