package codec

import (
	"time"

	"gopkg.in/inf.v0"

	"github.com/lk2023060901/datameta-go/pkg/buffer/ring"
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/util/typeutil"
)

// Codec 将一组 Options 绑定到所有原始类型集合的读写操作上。
// Codec 创建后不可变，可以在多个 goroutine 间共享。
type Codec struct {
	opts Options
	dttm InOutable[time.Time]
}

// std 为包级函数使用的默认 Codec。
var std = New()

// New 创建一个 Codec，未指定的参数取 DefaultOptions。
func New(opts ...Option) *Codec {
	o := buildOptions(opts...)
	return &Codec{
		opts: o,
		dttm: DateTimeCodecOf(o.DateTimeForm),
	}
}

// Options 返回 Codec 使用的参数。
func (c *Codec) Options() Options {
	return c.opts
}

// DateTime 返回日期集合元素使用的编解码器。
func (c *Codec) DateTime() InOutable[time.Time] {
	return c.dttm
}

// ListWith 返回使用 c 的参数的列表编解码器。
func ListWith[T any](c *Codec, elem InOutable[T]) InOutable[[]T] {
	return listCodec[T]{elem: elem, opts: c.opts}
}

// SetWith 返回使用 c 的参数的集合编解码器。
func SetWith[T comparable](c *Codec, elem InOutable[T]) InOutable[typeutil.Set[T]] {
	return setCodec[T]{elem: elem, opts: c.opts}
}

// SortedSetWith 返回使用 c 的参数、按 cmp 排序写出的集合编解码器。
func SortedSetWith[T comparable](c *Codec, elem InOutable[T], cmp func(a, b T) int) InOutable[typeutil.Set[T]] {
	return setCodec[T]{elem: elem, cmp: cmp, opts: c.opts}
}

// DequeWith 返回使用 c 的参数的双端队列编解码器。
func DequeWith[T any](c *Codec, elem InOutable[T]) InOutable[*ring.Deque[T]] {
	return dequeCodec[T]{elem: elem, opts: c.opts}
}

// WriteLongArray 写出 int64 数组，与 WriteListInt64 线格式相同。
func (c *Codec) WriteLongArray(out stream.DataOutput, vals []int64) error {
	return c.WriteListInt64(out, vals)
}

// ReadLongArray 读取 int64 数组。
func (c *Codec) ReadLongArray(in stream.DataInput) ([]int64, error) {
	return c.ReadListInt64(in)
}

func (c *Codec) WriteListInt32(out stream.DataOutput, vals []int32) error {
	return listCodec[int32]{elem: Int32Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListInt32(in stream.DataInput) ([]int32, error) {
	return listCodec[int32]{elem: Int32Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetInt32(out stream.DataOutput, vals typeutil.Set[int32]) error {
	return setCodec[int32]{elem: Int32Codec, cmp: compareOrdered[int32], opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetInt32(in stream.DataInput) (typeutil.Set[int32], error) {
	return setCodec[int32]{elem: Int32Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeInt32(out stream.DataOutput, vals *ring.Deque[int32]) error {
	return dequeCodec[int32]{elem: Int32Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeInt32(in stream.DataInput) (*ring.Deque[int32], error) {
	return dequeCodec[int32]{elem: Int32Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListInt64(out stream.DataOutput, vals []int64) error {
	return listCodec[int64]{elem: Int64Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListInt64(in stream.DataInput) ([]int64, error) {
	return listCodec[int64]{elem: Int64Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetInt64(out stream.DataOutput, vals typeutil.Set[int64]) error {
	return setCodec[int64]{elem: Int64Codec, cmp: compareOrdered[int64], opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetInt64(in stream.DataInput) (typeutil.Set[int64], error) {
	return setCodec[int64]{elem: Int64Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeInt64(out stream.DataOutput, vals *ring.Deque[int64]) error {
	return dequeCodec[int64]{elem: Int64Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeInt64(in stream.DataInput) (*ring.Deque[int64], error) {
	return dequeCodec[int64]{elem: Int64Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListBool(out stream.DataOutput, vals []bool) error {
	return listCodec[bool]{elem: BoolCodec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListBool(in stream.DataInput) ([]bool, error) {
	return listCodec[bool]{elem: BoolCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetBool(out stream.DataOutput, vals typeutil.Set[bool]) error {
	return setCodec[bool]{elem: BoolCodec, cmp: compareBool, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetBool(in stream.DataInput) (typeutil.Set[bool], error) {
	return setCodec[bool]{elem: BoolCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeBool(out stream.DataOutput, vals *ring.Deque[bool]) error {
	return dequeCodec[bool]{elem: BoolCodec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeBool(in stream.DataInput) (*ring.Deque[bool], error) {
	return dequeCodec[bool]{elem: BoolCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListFloat32(out stream.DataOutput, vals []float32) error {
	return listCodec[float32]{elem: Float32Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListFloat32(in stream.DataInput) ([]float32, error) {
	return listCodec[float32]{elem: Float32Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetFloat32(out stream.DataOutput, vals typeutil.Set[float32]) error {
	return setCodec[float32]{elem: Float32Codec, cmp: compareOrdered[float32], opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetFloat32(in stream.DataInput) (typeutil.Set[float32], error) {
	return setCodec[float32]{elem: Float32Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeFloat32(out stream.DataOutput, vals *ring.Deque[float32]) error {
	return dequeCodec[float32]{elem: Float32Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeFloat32(in stream.DataInput) (*ring.Deque[float32], error) {
	return dequeCodec[float32]{elem: Float32Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListFloat64(out stream.DataOutput, vals []float64) error {
	return listCodec[float64]{elem: Float64Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListFloat64(in stream.DataInput) ([]float64, error) {
	return listCodec[float64]{elem: Float64Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetFloat64(out stream.DataOutput, vals typeutil.Set[float64]) error {
	return setCodec[float64]{elem: Float64Codec, cmp: compareOrdered[float64], opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetFloat64(in stream.DataInput) (typeutil.Set[float64], error) {
	return setCodec[float64]{elem: Float64Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeFloat64(out stream.DataOutput, vals *ring.Deque[float64]) error {
	return dequeCodec[float64]{elem: Float64Codec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeFloat64(in stream.DataInput) (*ring.Deque[float64], error) {
	return dequeCodec[float64]{elem: Float64Codec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListString(out stream.DataOutput, vals []string) error {
	return listCodec[string]{elem: StringCodec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListString(in stream.DataInput) ([]string, error) {
	return listCodec[string]{elem: StringCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetString(out stream.DataOutput, vals typeutil.Set[string]) error {
	return setCodec[string]{elem: StringCodec, cmp: compareOrdered[string], opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetString(in stream.DataInput) (typeutil.Set[string], error) {
	return setCodec[string]{elem: StringCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeString(out stream.DataOutput, vals *ring.Deque[string]) error {
	return dequeCodec[string]{elem: StringCodec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeString(in stream.DataInput) (*ring.Deque[string], error) {
	return dequeCodec[string]{elem: StringCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListDateTime(out stream.DataOutput, vals []time.Time) error {
	return listCodec[time.Time]{elem: c.dttm, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListDateTime(in stream.DataInput) ([]time.Time, error) {
	return listCodec[time.Time]{elem: c.dttm, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetDateTime(out stream.DataOutput, vals typeutil.Set[time.Time]) error {
	return setCodec[time.Time]{elem: c.dttm, cmp: compareTime, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetDateTime(in stream.DataInput) (typeutil.Set[time.Time], error) {
	return setCodec[time.Time]{elem: c.dttm, opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeDateTime(out stream.DataOutput, vals *ring.Deque[time.Time]) error {
	return dequeCodec[time.Time]{elem: c.dttm, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeDateTime(in stream.DataInput) (*ring.Deque[time.Time], error) {
	return dequeCodec[time.Time]{elem: c.dttm, opts: c.opts}.Read(in)
}

func (c *Codec) WriteListDecimal(out stream.DataOutput, vals []*inf.Dec) error {
	return listCodec[*inf.Dec]{elem: DecimalCodec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadListDecimal(in stream.DataInput) ([]*inf.Dec, error) {
	return listCodec[*inf.Dec]{elem: DecimalCodec, opts: c.opts}.Read(in)
}

func (c *Codec) WriteSetDecimal(out stream.DataOutput, vals DecimalSet) error {
	return decimalSetCodec{opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadSetDecimal(in stream.DataInput) (DecimalSet, error) {
	return decimalSetCodec{opts: c.opts}.Read(in)
}

func (c *Codec) WriteDequeDecimal(out stream.DataOutput, vals *ring.Deque[*inf.Dec]) error {
	return dequeCodec[*inf.Dec]{elem: DecimalCodec, opts: c.opts}.Write(out, vals)
}

func (c *Codec) ReadDequeDecimal(in stream.DataInput) (*ring.Deque[*inf.Dec], error) {
	return dequeCodec[*inf.Dec]{elem: DecimalCodec, opts: c.opts}.Read(in)
}
