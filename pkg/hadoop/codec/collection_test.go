package codec

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"

	"github.com/lk2023060901/datameta-go/pkg/buffer/ring"
	"github.com/lk2023060901/datameta-go/pkg/datameta"
	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
	"github.com/lk2023060901/datameta-go/pkg/util/typeutil"
)

func encode(t *testing.T, write func(out stream.DataOutput) error) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, write(stream.NewDataOutput(buf)))
	return buf.Bytes()
}

// decode 读取一个值并确认 data 被恰好消费完。
func decode[T any](t *testing.T, data []byte, read func(in stream.DataInput) (T, error)) T {
	t.Helper()
	in := stream.NewDataInput(bytes.NewReader(data))
	v, err := read(in)
	require.NoError(t, err)
	_, err = in.ReadByte()
	require.ErrorIs(t, err, merr.ErrTruncatedStream, "trailing bytes left")
	return v
}

func decimals(t *testing.T, texts ...string) []*inf.Dec {
	out := make([]*inf.Dec, 0, len(texts))
	for _, s := range texts {
		d, err := ParseDecimal(s)
		require.NoError(t, err)
		out = append(out, d)
	}
	return out
}

func decimalStrings(ds []*inf.Dec) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func checkPrimitive[T comparable](t *testing.T, vals []T,
	writeList func(stream.DataOutput, []T) error, readList func(stream.DataInput) ([]T, error),
	writeSet func(stream.DataOutput, typeutil.Set[T]) error, readSet func(stream.DataInput) (typeutil.Set[T], error),
	writeDeque func(stream.DataOutput, *ring.Deque[T]) error, readDeque func(stream.DataInput) (*ring.Deque[T], error),
) {
	t.Helper()

	data := encode(t, func(out stream.DataOutput) error { return writeList(out, vals) })
	assert.Equal(t, vals, decode(t, data, readList))

	set := typeutil.NewSet(vals...)
	data = encode(t, func(out stream.DataOutput) error { return writeSet(out, set) })
	assert.True(t, set.Equal(decode(t, data, readSet)))

	dq := ring.Of(vals...)
	data = encode(t, func(out stream.DataOutput) error { return writeDeque(out, dq) })
	assert.Equal(t, vals, decode(t, data, readDeque).Slice())

	// nil 集合不写任何字节，空集合只写长度 0。
	assert.Empty(t, encode(t, func(out stream.DataOutput) error { return writeList(out, nil) }))
	assert.Empty(t, encode(t, func(out stream.DataOutput) error { return writeSet(out, nil) }))
	assert.Empty(t, encode(t, func(out stream.DataOutput) error { return writeDeque(out, nil) }))

	empty := []byte{0x00}
	assert.Equal(t, empty, encode(t, func(out stream.DataOutput) error { return writeList(out, []T{}) }))
	assert.NotNil(t, decode(t, empty, readList))
	assert.NotNil(t, decode(t, empty, readSet))
	assert.NotNil(t, decode(t, empty, readDeque))
}

func TestPrimitiveCollections(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		checkPrimitive(t, []int32{0, -1, 127, 128, -113, math.MaxInt32, math.MinInt32},
			WriteListInt32, ReadListInt32, WriteSetInt32, ReadSetInt32, WriteDequeInt32, ReadDequeInt32)
	})
	t.Run("int64", func(t *testing.T) {
		checkPrimitive(t, []int64{0, 1 << 40, -(1 << 40), math.MaxInt64, math.MinInt64},
			WriteListInt64, ReadListInt64, WriteSetInt64, ReadSetInt64, WriteDequeInt64, ReadDequeInt64)
	})
	t.Run("bool", func(t *testing.T) {
		checkPrimitive(t, []bool{true, false},
			WriteListBool, ReadListBool, WriteSetBool, ReadSetBool, WriteDequeBool, ReadDequeBool)
	})
	t.Run("float32", func(t *testing.T) {
		checkPrimitive(t, []float32{0, 1.5, -3.25, math.MaxFloat32, float32(math.Inf(-1))},
			WriteListFloat32, ReadListFloat32, WriteSetFloat32, ReadSetFloat32, WriteDequeFloat32, ReadDequeFloat32)
	})
	t.Run("float64", func(t *testing.T) {
		checkPrimitive(t, []float64{0, 1.5, -3.25, math.SmallestNonzeroFloat64, math.Inf(1)},
			WriteListFloat64, ReadListFloat64, WriteSetFloat64, ReadSetFloat64, WriteDequeFloat64, ReadDequeFloat64)
	})
	t.Run("string", func(t *testing.T) {
		checkPrimitive(t, []string{"", "a", "héllo", "数据"},
			WriteListString, ReadListString, WriteSetString, ReadSetString, WriteDequeString, ReadDequeString)
	})
	t.Run("datetime", func(t *testing.T) {
		checkPrimitive(t, []time.Time{datameta.FromMillis(0), datameta.FromMillis(1464586777000), datameta.FromMillis(-1)},
			WriteListDateTime, ReadListDateTime, WriteSetDateTime, ReadSetDateTime, WriteDequeDateTime, ReadDequeDateTime)
	})
}

func TestListBytes(t *testing.T) {
	data := encode(t, func(out stream.DataOutput) error { return WriteListInt32(out, []int32{1, 128}) })
	assert.Equal(t, []byte{0x02, 0x01, 0x8F, 0x80}, data)

	data = encode(t, func(out stream.DataOutput) error { return WriteListBool(out, []bool{true, false}) })
	assert.Equal(t, []byte{0x02, 0x01, 0x00}, data)

	data = encode(t, func(out stream.DataOutput) error {
		return WriteListDateTime(out, []time.Time{datameta.FromMillis(1464586777000)})
	})
	assert.Equal(t, []byte{0x01, 0x00, 0x8A, 0x01, 0x55, 0x00, 0x2C, 0xB1, 0xA8}, data)

	data = encode(t, func(out stream.DataOutput) error { return WriteLongArray(out, []int64{-1, 300}) })
	assert.Equal(t, []byte{0x02, 0xFF, 0x8E, 0x01, 0x2C}, data)
	assert.Equal(t, []int64{-1, 300}, decode(t, data, ReadLongArray))
}

func TestDecimalCollections(t *testing.T) {
	vals := decimals(t, "1.10", "2.200", "3")

	data := encode(t, func(out stream.DataOutput) error { return WriteListDecimal(out, vals) })
	assert.Equal(t, []byte{0x03, 0x04, '1', '.', '1', '0', 0x05, '2', '.', '2', '0', '0', 0x01, '3'}, data)
	assert.Equal(t, []string{"1.10", "2.200", "3"}, decimalStrings(decode(t, data, ReadListDecimal)))

	set := NewDecimalSet(vals...)
	data = encode(t, func(out stream.DataOutput) error { return WriteSetDecimal(out, set) })
	got := decode(t, data, ReadSetDecimal)
	assert.True(t, set.Equal(got))
	assert.ElementsMatch(t, []string{"1.10", "2.200", "3"}, decimalStrings(got.Collect()))

	dq := ring.Of(vals...)
	data = encode(t, func(out stream.DataOutput) error { return WriteDequeDecimal(out, dq) })
	assert.Equal(t, []string{"1.10", "2.200", "3"}, decimalStrings(decode(t, data, ReadDequeDecimal).Slice()))

	buf := &bytes.Buffer{}
	err := WriteListDecimal(stream.NewDataOutput(buf), []*inf.Dec{vals[0], nil})
	assert.ErrorIs(t, err, merr.ErrValueAbsent)
}

func TestCanonicalSetOrder(t *testing.T) {
	c := New(WithCanonicalSetOrder(true))

	a := typeutil.NewSet[int32](3, 1, 2, 200)
	b := typeutil.NewSet[int32](200, 2, 1, 3)
	dataA := encode(t, func(out stream.DataOutput) error { return c.WriteSetInt32(out, a) })
	dataB := encode(t, func(out stream.DataOutput) error { return c.WriteSetInt32(out, b) })
	assert.Equal(t, []byte{0x04, 0x01, 0x02, 0x03, 0x8F, 0xC8}, dataA)
	assert.Equal(t, dataA, dataB)

	data := encode(t, func(out stream.DataOutput) error { return c.WriteSetBool(out, typeutil.NewSet(true, false)) })
	assert.Equal(t, []byte{0x02, 0x00, 0x01}, data)

	data = encode(t, func(out stream.DataOutput) error {
		return c.WriteSetString(out, typeutil.NewSet("b", "a"))
	})
	assert.Equal(t, []byte{0x02, 0x01, 'a', 0x01, 'b'}, data)

	data = encode(t, func(out stream.DataOutput) error {
		return c.WriteSetDateTime(out, typeutil.NewSet(datameta.FromMillis(2), datameta.FromMillis(1)))
	})
	assert.Equal(t, []byte{0x02, 0x00, 0x01, 0x00, 0x02}, data)

	data = encode(t, func(out stream.DataOutput) error {
		return c.WriteSetDecimal(out, NewDecimalSet(decimals(t, "3", "2.200", "1.10")...))
	})
	assert.Equal(t, []byte{0x03, 0x04, '1', '.', '1', '0', 0x05, '2', '.', '2', '0', '0', 0x01, '3'}, data)

	// 读取与写出顺序无关。
	got := decode(t, dataA, ReadSetInt32)
	assert.True(t, a.Equal(got))
}

func TestDateTimeForm(t *testing.T) {
	c := New(WithDateTimeForm(DateTimeUTC))
	assert.Equal(t, DateTimeUTC, c.Options().DateTimeForm)

	vals := []time.Time{datameta.FromMillis(1464586777000)}
	data := encode(t, func(out stream.DataOutput) error { return c.WriteListDateTime(out, vals) })
	assert.Equal(t, []byte{0x01, 0x8A, 0x01, 0x55, 0x00, 0x2C, 0xB1, 0xA8}, data)
	assert.Equal(t, vals, decode(t, data, c.ReadListDateTime))

	dq := decode(t, encode(t, func(out stream.DataOutput) error {
		return c.WriteDequeDateTime(out, ring.Of(vals...))
	}), c.ReadDequeDateTime)
	assert.Equal(t, vals, dq.Slice())
}

func TestMalformedCounts(t *testing.T) {
	negative := encode(t, func(out stream.DataOutput) error { return stream.WriteVInt(out, -1) })
	_, err := ReadListInt32(stream.NewDataInput(bytes.NewReader(negative)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)
	_, err = ReadSetString(stream.NewDataInput(bytes.NewReader(negative)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)
	_, err = ReadDequeDecimal(stream.NewDataInput(bytes.NewReader(negative)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)

	c := New(WithMaxCollectionLen(2))
	three := encode(t, func(out stream.DataOutput) error { return WriteListInt64(out, []int64{1, 2, 3}) })
	_, err = c.ReadListInt64(stream.NewDataInput(bytes.NewReader(three)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)
	assert.True(t, merr.IsDecodeErr(err))

	// 长度前缀声称的元素多于实际字节。
	truncated := encode(t, func(out stream.DataOutput) error { return stream.WriteVInt(out, 1000) })
	truncated = append(truncated, 0x01, 0x02)
	got, err := ReadListInt32(stream.NewDataInput(bytes.NewReader(truncated)))
	assert.ErrorIs(t, err, merr.ErrTruncatedStream)
	assert.Nil(t, got)

	_, err = ReadListInt32(stream.NewDataInput(bytes.NewReader(nil)))
	assert.ErrorIs(t, err, merr.ErrTruncatedStream)
}

type tag struct {
	Name string
	Rank int32
}

var tagCodec = InOutableFunc[tag]{
	ReadFunc: func(in stream.DataInput) (tag, error) {
		name, err := ReadText(in)
		if err != nil {
			return tag{}, err
		}
		rank, err := stream.ReadVInt(in)
		return tag{Name: name, Rank: rank}, err
	},
	WriteFunc: func(out stream.DataOutput, v tag) error {
		if err := WriteText(out, v.Name); err != nil {
			return err
		}
		return stream.WriteVInt(out, v.Rank)
	},
}

func TestGenericCollections(t *testing.T) {
	tags := []tag{{"a", 1}, {"b", -2}, {"c", 300}}

	data := encode(t, func(out stream.DataOutput) error { return WriteList[tag](out, tagCodec, tags) })
	assert.Equal(t, tags, decode(t, data, func(in stream.DataInput) ([]tag, error) { return ReadList[tag](in, tagCodec) }))

	set := typeutil.NewSet(tags...)
	data = encode(t, func(out stream.DataOutput) error { return WriteSet[tag](out, tagCodec, set) })
	gotSet := decode(t, data, func(in stream.DataInput) (typeutil.Set[tag], error) { return ReadSet[tag](in, tagCodec) })
	assert.True(t, set.Equal(gotSet))

	dq := ring.Of(tags...)
	data = encode(t, func(out stream.DataOutput) error { return WriteDeque[tag](out, tagCodec, dq) })
	gotDq := decode(t, data, func(in stream.DataInput) (*ring.Deque[tag], error) { return ReadDeque[tag](in, tagCodec) })
	assert.Equal(t, tags, gotDq.Slice())

	assert.Empty(t, encode(t, func(out stream.DataOutput) error { return WriteList[tag](out, tagCodec, nil) }))
}

func TestNestedCollections(t *testing.T) {
	nested := ListOf(ListOf(Int32Codec))
	vals := [][]int32{{1, 2}, {}, {3}}
	data := encode(t, func(out stream.DataOutput) error { return nested.Write(out, vals) })
	assert.Equal(t, []byte{0x03, 0x02, 0x01, 0x02, 0x00, 0x01, 0x03}, data)
	assert.Equal(t, vals, decode(t, data, nested.Read))
}

func TestCollectionReadValReuse(t *testing.T) {
	data := encode(t, func(out stream.DataOutput) error { return WriteListInt32(out, []int32{4, 5}) })

	list := make([]int32, 1, 8)
	got, err := ListOf(Int32Codec).ReadVal(stream.NewDataInput(bytes.NewReader(data)), list)
	require.NoError(t, err)
	assert.Equal(t, []int32{4, 5}, got)
	assert.Equal(t, 8, cap(got))

	set := typeutil.NewSet[int32](9)
	gotSet, err := SetOf(Int32Codec).ReadVal(stream.NewDataInput(bytes.NewReader(data)), set)
	require.NoError(t, err)
	assert.True(t, gotSet.Equal(typeutil.NewSet[int32](4, 5)))
	assert.False(t, set.Contain(9))

	dq := ring.Of[int32](7, 7, 7)
	gotDq, err := DequeOf(Int32Codec).ReadVal(stream.NewDataInput(bytes.NewReader(data)), dq)
	require.NoError(t, err)
	assert.Same(t, dq, gotDq)
	assert.Equal(t, []int32{4, 5}, dq.Slice())
}

func TestCodecBoundHelpers(t *testing.T) {
	c := New(WithCanonicalSetOrder(true), WithMaxCollectionLen(4))

	sorted := SortedSetWith(c, tagCodec, func(a, b tag) int { return int(a.Rank - b.Rank) })
	data := encode(t, func(out stream.DataOutput) error {
		return sorted.Write(out, typeutil.NewSet(tag{"z", 2}, tag{"y", 1}))
	})
	assert.Equal(t, []byte{0x02, 0x01, 'y', 0x01, 0x01, 'z', 0x02}, data)

	tooMany := encode(t, func(out stream.DataOutput) error { return WriteListInt32(out, []int32{1, 2, 3, 4, 5}) })
	_, err := ListWith(c, Int32Codec).Read(stream.NewDataInput(bytes.NewReader(tooMany)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)
	_, err = SetWith(c, Int32Codec).Read(stream.NewDataInput(bytes.NewReader(tooMany)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)
	_, err = DequeWith(c, Int32Codec).Read(stream.NewDataInput(bytes.NewReader(tooMany)))
	assert.ErrorIs(t, err, merr.ErrMalformedLength)

	assert.Equal(t, DateTimeLegacy, c.Options().DateTimeForm)
	data = encode(t, func(out stream.DataOutput) error { return c.DateTime().Write(out, datameta.FromMillis(1)) })
	assert.Equal(t, []byte{0x00, 0x01}, data)
}
