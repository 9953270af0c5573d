package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

type dataInput struct {
	r       io.Reader
	br      io.ByteReader // r 自身实现了 io.ByteReader 时非 nil
	scratch [8]byte
}

var _ DataInput = (*dataInput)(nil)

// NewDataInput 基于 r 创建一个 DataInput。
// r 本身已经是 DataInput 时直接返回。
func NewDataInput(r io.Reader) DataInput {
	if in, ok := r.(DataInput); ok {
		return in
	}
	in := &dataInput{r: r}
	if br, ok := r.(io.ByteReader); ok {
		in.br = br
	}
	return in
}

func (in *dataInput) ReadByte() (byte, error) {
	if in.br != nil {
		b, err := in.br.ReadByte()
		if err != nil {
			return 0, merr.WrapErrTruncatedStream("byte", err)
		}
		return b, nil
	}
	if err := in.ReadFully(in.scratch[:1]); err != nil {
		return 0, err
	}
	return in.scratch[0], nil
}

func (in *dataInput) ReadFully(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := io.ReadFull(in.r, p); err != nil {
		return merr.WrapErrTruncatedStream("bytes", err)
	}
	return nil
}

func (in *dataInput) ReadBoolean() (bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (in *dataInput) ReadFloat() (float32, error) {
	if err := in.ReadFully(in.scratch[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(in.scratch[:4])), nil
}

func (in *dataInput) ReadDouble() (float64, error) {
	if err := in.ReadFully(in.scratch[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(in.scratch[:8])), nil
}
