// Package bytesio 在内存字节切片与 codec 之间做转换：
// 写出时使用池化缓冲区，读取时允许数据末尾存在多余字节。
package bytesio

import (
	"bytes"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"

	"github.com/lk2023060901/datameta-go/pkg/hadoop/codec"
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/log"
	"github.com/lk2023060901/datameta-go/pkg/metrics"
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

const (
	opWrite          = "write"
	opRead           = "read"
	opWriteVersioned = "write_versioned"
	opReadVersioned  = "read_versioned"

	component = "bytesio"
)

// Write 将 val 编码为一个新的字节切片。
func Write[T any](io codec.InOutable[T], val T) ([]byte, error) {
	return encode(opWrite, func(out stream.DataOutput) error {
		return io.Write(out, val)
	})
}

// WriteVersioned 将 VInt(val.Version()) 与 val 编码为一个新的字节切片。
func WriteVersioned[T codec.Versioned](io codec.InOutable[T], val T) ([]byte, error) {
	return encode(opWriteVersioned, func(out stream.DataOutput) error {
		return codec.WriteVersioned(out, io, val)
	})
}

// Read 从 data 中解码一个值，data 末尾的多余字节被忽略。
func Read[T any](data []byte, io codec.InOutable[T]) (T, error) {
	return decode(opRead, data, io.Read)
}

// ReadVersioned 从 data 中读取并丢弃版本号，然后解码一个值。
func ReadVersioned[T any](data []byte, io codec.InOutable[T]) (T, error) {
	return decode(opReadVersioned, data, func(in stream.DataInput) (T, error) {
		return codec.ReadVersioned(in, io)
	})
}

func encode(op string, write func(out stream.DataOutput) error) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := write(stream.NewDataOutput(buf)); err != nil {
		observe(op, 0, err)
		return nil, err
	}
	data := make([]byte, buf.Len())
	copy(data, buf.B)
	observe(op, len(data), nil)
	return data, nil
}

func decode[T any](op string, data []byte, read func(in stream.DataInput) (T, error)) (T, error) {
	r := bytes.NewReader(data)
	val, err := read(stream.NewDataInput(r))
	if err != nil {
		var zero T
		observe(op, 0, err)
		return zero, err
	}
	consumed := len(data) - r.Len()
	if r.Len() > 0 {
		logger().Debug("trailing bytes after decoded value",
			log.FieldOp(op),
			log.FieldSize(r.Len()),
			zap.Int("consumed", consumed))
	}
	observe(op, consumed, nil)
	return val, nil
}

func observe(op string, n int, err error) {
	if err != nil {
		metrics.CodecOps.WithLabelValues(op, metrics.FailLabel).Inc()
		metrics.CodecFailures.WithLabelValues(op, merr.CodeName(err)).Inc()
		logger().Debug("codec failed", log.FieldOp(op), zap.Error(err))
		return
	}
	metrics.CodecOps.WithLabelValues(op, metrics.SuccessLabel).Inc()
	metrics.CodecBytes.WithLabelValues(op).Add(float64(n))
	metrics.CodecPayloadSize.WithLabelValues(op).Observe(float64(n))
}

// logger 返回带 component 字段的 Logger，字段在首次输出时才编码。
func logger() *log.MLogger {
	return log.With(log.FieldComponent(component))
}
