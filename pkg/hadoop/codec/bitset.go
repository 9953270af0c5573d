package codec

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/lk2023060901/datameta-go/pkg/hadoop/stream"
)

const wordBits = 64

// BitsToWords 将长度为 n 的位序列打包为 ⌈n/64⌉ 个 int64：
// 第 i 位存放在第 i/64 个字的第 i%64 位（最低位为第 0 位）。
// b 为 nil 时返回 nil。
func BitsToWords(b *bitset.BitSet) []int64 {
	if b == nil {
		return nil
	}
	n := b.Len()
	words := make([]int64, (n+wordBits-1)/wordBits)
	for i, ok := b.NextSet(0); ok && i < n; i, ok = b.NextSet(i + 1) {
		words[i/wordBits] |= int64(uint64(1) << (i % wordBits))
	}
	return words
}

// WordsToBits 是 BitsToWords 的逆操作，结果长度为 len(words)*64。
// 原始位序列的长度不在线格式中，需要调用方自行保存。
func WordsToBits(words []int64) *bitset.BitSet {
	if len(words) == 0 {
		return bitset.New(0)
	}
	buf := make([]uint64, len(words))
	for i, w := range words {
		buf[i] = uint64(w)
	}
	return bitset.From(buf)
}

// WriteBitSet 以 int64 数组的格式写出位序列，b 为 nil 时不写任何字节。
func WriteBitSet(out stream.DataOutput, b *bitset.BitSet) error {
	return WriteLongArray(out, BitsToWords(b))
}

// ReadBitSet 读取由 WriteBitSet 写出的位序列，长度为 64 的整数倍。
func ReadBitSet(in stream.DataInput) (*bitset.BitSet, error) {
	words, err := ReadLongArray(in)
	if err != nil {
		return nil, err
	}
	return WordsToBits(words), nil
}
