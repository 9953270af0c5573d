package codec

import (
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
)

// WriteVersioned 写出 VInt(val.Version()) 后紧跟 val 的负载。
func WriteVersioned[T Versioned](out stream.DataOutput, io InOutable[T], val T) error {
	if err := WriteVersion(out, val.Version()); err != nil {
		return err
	}
	return io.Write(out, val)
}

// ReadVersioned 读取并丢弃版本号，然后用 io 解码负载。
// 版本号与 io 期望的版本不一致时不会报错，由调用方自行保证。
func ReadVersioned[T any](in stream.DataInput, io InOutable[T]) (T, error) {
	_, val, err := ReadVersionedTag(in, io)
	return val, err
}

// ReadVersionedTag 与 ReadVersioned 相同，但同时返回读到的版本号，
// 便于调用方在编解码层之上实现自己的版本策略。
func ReadVersionedTag[T any](in stream.DataInput, io InOutable[T]) (int32, T, error) {
	var zero T
	ver, err := ReadVersion(in)
	if err != nil {
		return 0, zero, err
	}
	val, err := io.Read(in)
	if err != nil {
		return ver, zero, err
	}
	return ver, val, nil
}
