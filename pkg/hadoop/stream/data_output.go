package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// 与 Float.floatToIntBits / Double.doubleToLongBits 一致的规范 NaN。
const (
	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
)

type dataOutput struct {
	w       io.Writer
	bw      io.ByteWriter
	scratch [8]byte
}

var _ DataOutput = (*dataOutput)(nil)

// NewDataOutput 基于 w 创建一个 DataOutput。
// w 本身已经是 DataOutput 时直接返回。
func NewDataOutput(w io.Writer) DataOutput {
	if out, ok := w.(DataOutput); ok {
		return out
	}
	out := &dataOutput{w: w}
	if bw, ok := w.(io.ByteWriter); ok {
		out.bw = bw
	}
	return out
}

func (out *dataOutput) WriteByte(b byte) error {
	if out.bw != nil {
		return merr.WrapErrIoFailed("byte", out.bw.WriteByte(b))
	}
	out.scratch[0] = b
	_, err := out.Write(out.scratch[:1])
	return err
}

func (out *dataOutput) Write(p []byte) (int, error) {
	n, err := out.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, merr.WrapErrIoFailed("bytes", err)
}

func (out *dataOutput) WriteBoolean(v bool) error {
	if v {
		return out.WriteByte(1)
	}
	return out.WriteByte(0)
}

func (out *dataOutput) WriteFloat(v float32) error {
	bits := math.Float32bits(v)
	if math.IsNaN(float64(v)) {
		bits = canonicalNaN32
	}
	binary.BigEndian.PutUint32(out.scratch[:4], bits)
	_, err := out.Write(out.scratch[:4])
	return err
}

func (out *dataOutput) WriteDouble(v float64) error {
	bits := math.Float64bits(v)
	if math.IsNaN(v) {
		bits = canonicalNaN64
	}
	binary.BigEndian.PutUint64(out.scratch[:8], bits)
	_, err := out.Write(out.scratch[:8])
	return err
}
