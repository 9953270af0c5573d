package codec

import (
	"math"

	"github.com/lk2023060901/datameta-go/pkg/buffer/ring"
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
	"github.com/lk2023060901/datameta-go/pkg/util/typeutil"
)

// 按长度前缀预分配的容量上限，超出部分随读取增长。
const maxPreallocLen = 1024

// 所有集合共用同一种线格式：nil 集合不写任何字节；
// 否则写出 VInt(元素个数)，随后依次写出每个元素。

func writeCount(out stream.DataOutput, what string, n int) error {
	if n > math.MaxInt32 {
		return merr.WrapErrMalformedLengthRange(what, int64(n), math.MaxInt32)
	}
	return stream.WriteVInt(out, int32(n))
}

func readCount(in stream.DataInput, what string, opts *Options) (int, error) {
	n, err := stream.ReadVInt(in)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, merr.WrapErrMalformedLength(what, int64(n), "negative element count")
	}
	if int64(n) > int64(opts.MaxCollectionLen) {
		return 0, merr.WrapErrMalformedLengthRange(what, int64(n), int64(opts.MaxCollectionLen))
	}
	return int(n), nil
}

func writeElements[T any](out stream.DataOutput, elem InOutable[T], what string, vals []T) error {
	if err := writeCount(out, what, len(vals)); err != nil {
		return err
	}
	for i := range vals {
		if err := elem.Write(out, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// readElements 读取元素个数和所有元素，依次交给 add。
func readElements[T any](in stream.DataInput, elem InOutable[T], what string, opts *Options, prepare func(n int), add func(v T)) error {
	n, err := readCount(in, what, opts)
	if err != nil {
		return err
	}
	prepare(min(n, maxPreallocLen))
	for i := 0; i < n; i++ {
		v, err := elem.Read(in)
		if err != nil {
			return err
		}
		add(v)
	}
	return nil
}

type listCodec[T any] struct {
	elem InOutable[T]
	opts Options
}

// ListOf 返回元素为 T 的列表编解码器。
func ListOf[T any](elem InOutable[T], opts ...Option) InOutable[[]T] {
	return listCodec[T]{elem: elem, opts: buildOptions(opts...)}
}

func (c listCodec[T]) Write(out stream.DataOutput, vals []T) error {
	if vals == nil {
		return nil
	}
	return writeElements(out, c.elem, "list", vals)
}

func (c listCodec[T]) Read(in stream.DataInput) ([]T, error) {
	return c.ReadVal(in, nil)
}

// ReadVal 复用 val 的底层数组。
func (c listCodec[T]) ReadVal(in stream.DataInput, val []T) ([]T, error) {
	result := val[:0]
	err := readElements(in, c.elem, "list", &c.opts,
		func(n int) {
			if result == nil {
				result = make([]T, 0, n)
			}
		},
		func(v T) { result = append(result, v) })
	if err != nil {
		return nil, err
	}
	return result, nil
}

type setCodec[T comparable] struct {
	elem InOutable[T]
	cmp  func(a, b T) int
	opts Options
}

// SetOf 返回元素为 T 的集合编解码器，写出顺序不固定。
func SetOf[T comparable](elem InOutable[T], opts ...Option) InOutable[typeutil.Set[T]] {
	return setCodec[T]{elem: elem, opts: buildOptions(opts...)}
}

// SortedSetOf 与 SetOf 相同，但启用 CanonicalSetOrder 时按 cmp 升序写出。
func SortedSetOf[T comparable](elem InOutable[T], cmp func(a, b T) int, opts ...Option) InOutable[typeutil.Set[T]] {
	return setCodec[T]{elem: elem, cmp: cmp, opts: buildOptions(opts...)}
}

func (c setCodec[T]) Write(out stream.DataOutput, set typeutil.Set[T]) error {
	if set == nil {
		return nil
	}
	var vals []T
	if c.opts.CanonicalSetOrder && c.cmp != nil {
		vals = typeutil.SortedCollectFunc(set, c.cmp)
	} else {
		vals = set.Collect()
	}
	return writeElements(out, c.elem, "set", vals)
}

func (c setCodec[T]) Read(in stream.DataInput) (typeutil.Set[T], error) {
	return c.ReadVal(in, nil)
}

// ReadVal 清空 val 后写入读到的元素，val 为 nil 时新建集合。
func (c setCodec[T]) ReadVal(in stream.DataInput, val typeutil.Set[T]) (typeutil.Set[T], error) {
	result := val
	err := readElements(in, c.elem, "set", &c.opts,
		func(n int) {
			if result == nil {
				result = make(typeutil.Set[T], n)
			} else {
				clear(result)
			}
		},
		func(v T) { result.Insert(v) })
	if err != nil {
		return nil, err
	}
	return result, nil
}

type dequeCodec[T any] struct {
	elem InOutable[T]
	opts Options
}

// DequeOf 返回元素为 T 的双端队列编解码器，按队首到队尾的顺序读写。
func DequeOf[T any](elem InOutable[T], opts ...Option) InOutable[*ring.Deque[T]] {
	return dequeCodec[T]{elem: elem, opts: buildOptions(opts...)}
}

func (c dequeCodec[T]) Write(out stream.DataOutput, dq *ring.Deque[T]) error {
	if dq == nil {
		return nil
	}
	if err := writeCount(out, "deque", dq.Len()); err != nil {
		return err
	}
	var err error
	dq.Range(func(_ int, v T) bool {
		err = c.elem.Write(out, v)
		return err == nil
	})
	return err
}

func (c dequeCodec[T]) Read(in stream.DataInput) (*ring.Deque[T], error) {
	return c.ReadVal(in, nil)
}

// ReadVal 清空 val 后依次追加到队尾，val 为 nil 时新建队列。
func (c dequeCodec[T]) ReadVal(in stream.DataInput, val *ring.Deque[T]) (*ring.Deque[T], error) {
	result := val
	err := readElements(in, c.elem, "deque", &c.opts,
		func(n int) {
			if result == nil {
				result = ring.New[T](n)
			} else {
				result.Reset()
			}
		},
		func(v T) { result.PushBack(v) })
	if err != nil {
		return nil, err
	}
	return result, nil
}

// WriteList 使用默认参数写出列表，list 为 nil 时不写任何字节。
func WriteList[T any](out stream.DataOutput, elem InOutable[T], list []T) error {
	return ListOf(elem).Write(out, list)
}

// ReadList 使用默认参数读取列表。
func ReadList[T any](in stream.DataInput, elem InOutable[T]) ([]T, error) {
	return ListOf(elem).Read(in)
}

// WriteSet 使用默认参数写出集合，set 为 nil 时不写任何字节。
func WriteSet[T comparable](out stream.DataOutput, elem InOutable[T], set typeutil.Set[T]) error {
	return SetOf(elem).Write(out, set)
}

// ReadSet 使用默认参数读取集合。
func ReadSet[T comparable](in stream.DataInput, elem InOutable[T]) (typeutil.Set[T], error) {
	return SetOf(elem).Read(in)
}

// WriteDeque 使用默认参数写出双端队列，dq 为 nil 时不写任何字节。
func WriteDeque[T any](out stream.DataOutput, elem InOutable[T], dq *ring.Deque[T]) error {
	return DequeOf(elem).Write(out, dq)
}

// ReadDeque 使用默认参数读取双端队列。
func ReadDeque[T any](in stream.DataInput, elem InOutable[T]) (*ring.Deque[T], error) {
	return DequeOf(elem).Read(in)
}
