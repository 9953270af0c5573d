package codec

import (
	"time"

	"gopkg.in/inf.v0"

	"github.com/lk2023060901/datameta-go/pkg/buffer/ring"
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/util/typeutil"
)

// 以下包级函数使用 DefaultOptions：集合写出顺序不固定，日期使用旧版格式。
// nil 集合不写任何字节；读取成功时总是返回非 nil 的容器。

// WriteLongArray 写出 int64 数组，与 WriteListInt64 线格式相同。
func WriteLongArray(out stream.DataOutput, vals []int64) error {
	return std.WriteLongArray(out, vals)
}

// ReadLongArray 读取 int64 数组。
func ReadLongArray(in stream.DataInput) ([]int64, error) {
	return std.ReadLongArray(in)
}

func WriteListInt32(out stream.DataOutput, vals []int32) error {
	return std.WriteListInt32(out, vals)
}

func ReadListInt32(in stream.DataInput) ([]int32, error) {
	return std.ReadListInt32(in)
}

func WriteSetInt32(out stream.DataOutput, vals typeutil.Set[int32]) error {
	return std.WriteSetInt32(out, vals)
}

func ReadSetInt32(in stream.DataInput) (typeutil.Set[int32], error) {
	return std.ReadSetInt32(in)
}

func WriteDequeInt32(out stream.DataOutput, vals *ring.Deque[int32]) error {
	return std.WriteDequeInt32(out, vals)
}

func ReadDequeInt32(in stream.DataInput) (*ring.Deque[int32], error) {
	return std.ReadDequeInt32(in)
}

func WriteListInt64(out stream.DataOutput, vals []int64) error {
	return std.WriteListInt64(out, vals)
}

func ReadListInt64(in stream.DataInput) ([]int64, error) {
	return std.ReadListInt64(in)
}

func WriteSetInt64(out stream.DataOutput, vals typeutil.Set[int64]) error {
	return std.WriteSetInt64(out, vals)
}

func ReadSetInt64(in stream.DataInput) (typeutil.Set[int64], error) {
	return std.ReadSetInt64(in)
}

func WriteDequeInt64(out stream.DataOutput, vals *ring.Deque[int64]) error {
	return std.WriteDequeInt64(out, vals)
}

func ReadDequeInt64(in stream.DataInput) (*ring.Deque[int64], error) {
	return std.ReadDequeInt64(in)
}

func WriteListBool(out stream.DataOutput, vals []bool) error {
	return std.WriteListBool(out, vals)
}

func ReadListBool(in stream.DataInput) ([]bool, error) {
	return std.ReadListBool(in)
}

func WriteSetBool(out stream.DataOutput, vals typeutil.Set[bool]) error {
	return std.WriteSetBool(out, vals)
}

func ReadSetBool(in stream.DataInput) (typeutil.Set[bool], error) {
	return std.ReadSetBool(in)
}

func WriteDequeBool(out stream.DataOutput, vals *ring.Deque[bool]) error {
	return std.WriteDequeBool(out, vals)
}

func ReadDequeBool(in stream.DataInput) (*ring.Deque[bool], error) {
	return std.ReadDequeBool(in)
}

func WriteListFloat32(out stream.DataOutput, vals []float32) error {
	return std.WriteListFloat32(out, vals)
}

func ReadListFloat32(in stream.DataInput) ([]float32, error) {
	return std.ReadListFloat32(in)
}

func WriteSetFloat32(out stream.DataOutput, vals typeutil.Set[float32]) error {
	return std.WriteSetFloat32(out, vals)
}

func ReadSetFloat32(in stream.DataInput) (typeutil.Set[float32], error) {
	return std.ReadSetFloat32(in)
}

func WriteDequeFloat32(out stream.DataOutput, vals *ring.Deque[float32]) error {
	return std.WriteDequeFloat32(out, vals)
}

func ReadDequeFloat32(in stream.DataInput) (*ring.Deque[float32], error) {
	return std.ReadDequeFloat32(in)
}

func WriteListFloat64(out stream.DataOutput, vals []float64) error {
	return std.WriteListFloat64(out, vals)
}

func ReadListFloat64(in stream.DataInput) ([]float64, error) {
	return std.ReadListFloat64(in)
}

func WriteSetFloat64(out stream.DataOutput, vals typeutil.Set[float64]) error {
	return std.WriteSetFloat64(out, vals)
}

func ReadSetFloat64(in stream.DataInput) (typeutil.Set[float64], error) {
	return std.ReadSetFloat64(in)
}

func WriteDequeFloat64(out stream.DataOutput, vals *ring.Deque[float64]) error {
	return std.WriteDequeFloat64(out, vals)
}

func ReadDequeFloat64(in stream.DataInput) (*ring.Deque[float64], error) {
	return std.ReadDequeFloat64(in)
}

func WriteListString(out stream.DataOutput, vals []string) error {
	return std.WriteListString(out, vals)
}

func ReadListString(in stream.DataInput) ([]string, error) {
	return std.ReadListString(in)
}

func WriteSetString(out stream.DataOutput, vals typeutil.Set[string]) error {
	return std.WriteSetString(out, vals)
}

func ReadSetString(in stream.DataInput) (typeutil.Set[string], error) {
	return std.ReadSetString(in)
}

func WriteDequeString(out stream.DataOutput, vals *ring.Deque[string]) error {
	return std.WriteDequeString(out, vals)
}

func ReadDequeString(in stream.DataInput) (*ring.Deque[string], error) {
	return std.ReadDequeString(in)
}

func WriteListDateTime(out stream.DataOutput, vals []time.Time) error {
	return std.WriteListDateTime(out, vals)
}

func ReadListDateTime(in stream.DataInput) ([]time.Time, error) {
	return std.ReadListDateTime(in)
}

func WriteSetDateTime(out stream.DataOutput, vals typeutil.Set[time.Time]) error {
	return std.WriteSetDateTime(out, vals)
}

func ReadSetDateTime(in stream.DataInput) (typeutil.Set[time.Time], error) {
	return std.ReadSetDateTime(in)
}

func WriteDequeDateTime(out stream.DataOutput, vals *ring.Deque[time.Time]) error {
	return std.WriteDequeDateTime(out, vals)
}

func ReadDequeDateTime(in stream.DataInput) (*ring.Deque[time.Time], error) {
	return std.ReadDequeDateTime(in)
}

func WriteListDecimal(out stream.DataOutput, vals []*inf.Dec) error {
	return std.WriteListDecimal(out, vals)
}

func ReadListDecimal(in stream.DataInput) ([]*inf.Dec, error) {
	return std.ReadListDecimal(in)
}

func WriteSetDecimal(out stream.DataOutput, vals DecimalSet) error {
	return std.WriteSetDecimal(out, vals)
}

func ReadSetDecimal(in stream.DataInput) (DecimalSet, error) {
	return std.ReadSetDecimal(in)
}

func WriteDequeDecimal(out stream.DataOutput, vals *ring.Deque[*inf.Dec]) error {
	return std.WriteDequeDecimal(out, vals)
}

func ReadDequeDecimal(in stream.DataInput) (*ring.Deque[*inf.Dec], error) {
	return std.ReadDequeDecimal(in)
}
