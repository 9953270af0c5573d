package codec

import (
	"math/big"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"gopkg.in/inf.v0"
)

var bigTen = big.NewInt(10)

// DecimalSet 是按数值去重的十进制数集合：1.10 与 1.1 视为同一个元素，
// 保留最先插入的那个表示。
type DecimalSet map[string]*inf.Dec

// NewDecimalSet 创建一个包含给定元素的 DecimalSet，nil 元素被忽略。
func NewDecimalSet(elements ...*inf.Dec) DecimalSet {
	set := make(DecimalSet, len(elements))
	set.Insert(elements...)
	return set
}

// Insert 将元素插入集合，nil 元素和数值上已存在的元素被忽略。
func (set DecimalSet) Insert(elements ...*inf.Dec) {
	for _, d := range elements {
		if d == nil {
			continue
		}
		key := decimalKey(d)
		if _, ok := set[key]; !ok {
			set[key] = d
		}
	}
}

// Contain 判断所有给定元素是否都存在于集合中。
func (set DecimalSet) Contain(elements ...*inf.Dec) bool {
	for _, d := range elements {
		if d == nil {
			return false
		}
		if _, ok := set[decimalKey(d)]; !ok {
			return false
		}
	}
	return true
}

// Remove 从集合中移除与给定元素数值相等的元素。
func (set DecimalSet) Remove(elements ...*inf.Dec) {
	for _, d := range elements {
		if d != nil {
			delete(set, decimalKey(d))
		}
	}
}

func (set DecimalSet) Len() int {
	return len(set)
}

// Collect 返回集合中的所有元素，顺序不固定。
func (set DecimalSet) Collect() []*inf.Dec {
	return lo.Values(set)
}

// Sorted 按数值升序返回集合中的所有元素。
func (set DecimalSet) Sorted() []*inf.Dec {
	elements := set.Collect()
	slices.SortFunc(elements, func(a, b *inf.Dec) int { return a.Cmp(b) })
	return elements
}

// Equal 判断两个集合是否包含数值上相同的元素。
func (set DecimalSet) Equal(other DecimalSet) bool {
	if set.Len() != other.Len() {
		return false
	}
	for key := range set {
		if _, ok := other[key]; !ok {
			return false
		}
	}
	return true
}

// decimalKey 返回去掉末尾零之后的 unscaled 值与 scale，数值相等的十进制数得到相同的 key。
func decimalKey(d *inf.Dec) string {
	unscaled := new(big.Int).Set(d.UnscaledBig())
	scale := int64(d.Scale())
	if unscaled.Sign() == 0 {
		return "0"
	}
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(unscaled, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		unscaled.Set(q)
		scale--
	}
	return unscaled.String() + "e" + strconv.FormatInt(-scale, 10)
}
