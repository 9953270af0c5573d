// Package codec 实现 DataMeta 的 Hadoop Writable 线格式：值编解码契约、
// 版本信封、日期/十进制数等标量、原始类型与泛型集合，以及位序列。
//
// 线格式本身不含类型信息、字段名和 null 标记，读写双方必须对字段顺序达成一致。
package codec

import (
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// InOutable 抽象了某一类型值的二进制读写能力。
//
// 实现需满足：对任意值 v，Read(Write(v)) 与 v 等价，且 Read 恰好消费 Write 写出的字节。
type InOutable[T any] interface {
	// Read 从 in 中读取一个新值。
	Read(in stream.DataInput) (T, error)

	// ReadVal 将读取结果合并到调用方提供的 val 中并返回它。
	// T 通常为指针类型，便于复用已分配的对象。
	ReadVal(in stream.DataInput, val T) (T, error)

	// Write 按固定字段顺序写出 val，不写任何 null 标记。
	Write(out stream.DataOutput, val T) error
}

// Versioned 表示一个携带版本号的值，版本号写在信封头部。
type Versioned interface {
	Version() int32
}

// InOutableFunc 通过函数组合出一个 InOutable。
// ReadValFunc 为 nil 时 ReadVal 退化为 Read。
type InOutableFunc[T any] struct {
	ReadFunc    func(in stream.DataInput) (T, error)
	ReadValFunc func(in stream.DataInput, val T) (T, error)
	WriteFunc   func(out stream.DataOutput, val T) error
}

var _ InOutable[int32] = InOutableFunc[int32]{}

func (f InOutableFunc[T]) Read(in stream.DataInput) (T, error) {
	return f.ReadFunc(in)
}

func (f InOutableFunc[T]) ReadVal(in stream.DataInput, val T) (T, error) {
	if f.ReadValFunc == nil {
		return f.ReadFunc(in)
	}
	return f.ReadValFunc(in, val)
}

func (f InOutableFunc[T]) Write(out stream.DataOutput, val T) error {
	return f.WriteFunc(out, val)
}

// WriteVersion 以 VInt 写出版本号。版本号必须非负。
func WriteVersion(out stream.DataOutput, ver int32) error {
	if ver < 0 {
		return merr.WrapErrVersionInvalid(int64(ver), "version must be non-negative")
	}
	return stream.WriteVInt(out, ver)
}

// ReadVersion 读取一个 VInt 版本号，不做任何语义校验。
func ReadVersion(in stream.DataInput) (int32, error) {
	return stream.ReadVInt(in)
}
