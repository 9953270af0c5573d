package bytesio

import (
	"go.uber.org/zap"

	"github.com/lk2023060901/datameta-go/pkg/hadoop/codec"
	"github.com/lk2023060901/datameta-go/pkg/log"
)

// Serializer 将某一类型的 InOutable 绑定为 “对象 <-> 字节切片” 的序列化器。
// Serializer 不持有状态，可以在多个 goroutine 间共享。
type Serializer[T any] struct {
	kind      string
	io        codec.InOutable[T]
	marshal   func(val T) ([]byte, error)
	unmarshal func(data []byte) (T, error)
}

// NewSerializer 创建一个不带版本信封的序列化器，kind 仅用于日志。
func NewSerializer[T any](kind string, io codec.InOutable[T]) *Serializer[T] {
	return &Serializer[T]{
		kind:      kind,
		io:        io,
		marshal:   func(val T) ([]byte, error) { return Write(io, val) },
		unmarshal: func(data []byte) (T, error) { return Read(data, io) },
	}
}

// NewVersionedSerializer 创建一个写出/读取版本信封的序列化器。
func NewVersionedSerializer[T codec.Versioned](kind string, io codec.InOutable[T]) *Serializer[T] {
	return &Serializer[T]{
		kind:      kind,
		io:        io,
		marshal:   func(val T) ([]byte, error) { return WriteVersioned(io, val) },
		unmarshal: func(data []byte) (T, error) { return ReadVersioned(data, io) },
	}
}

// Kind 返回创建时指定的类型名。
func (s *Serializer[T]) Kind() string {
	return s.kind
}

// InOutable 返回底层的编解码器。
func (s *Serializer[T]) InOutable() codec.InOutable[T] {
	return s.io
}

// Marshal 将 val 编码为字节切片。
func (s *Serializer[T]) Marshal(val T) ([]byte, error) {
	data, err := s.marshal(val)
	if err != nil {
		logger().With(log.FieldKind(s.kind)).Debug("marshal failed", zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Unmarshal 从字节切片解码一个值。
func (s *Serializer[T]) Unmarshal(data []byte) (T, error) {
	val, err := s.unmarshal(data)
	if err != nil {
		logger().With(log.FieldKind(s.kind)).Debug("unmarshal failed", log.FieldSize(len(data)), zap.Error(err))
		return val, err
	}
	return val, nil
}
