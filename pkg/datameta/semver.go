package datameta

import (
	"strconv"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// DiffLevel 表示两个版本号第一个不同的部分。
type DiffLevel int

const (
	DiffNone DiffLevel = iota
	DiffMajor
	DiffMinor
	DiffUpdate
	DiffBuild
)

var diffLevelName = map[DiffLevel]string{
	DiffNone:   "NONE",
	DiffMajor:  "MAJOR",
	DiffMinor:  "MINOR",
	DiffUpdate: "UPDATE",
	DiffBuild:  "BUILD",
}

func (l DiffLevel) String() string {
	return diffLevelName[l]
}

const (
	semVerMinParts = 3
	semVerMaxParts = 4
)

// SemVer 是 DataMeta 使用的版本号：major.minor.update[.build]，
// 之后可以跟任意非数字的后缀，后缀不参与比较。
type SemVer struct {
	source string
	v      semver.Version
	build  uint64 // 0 表示没有 build 部分
}

// ParseSemVer 解析版本号。前导的数字部分必须有 3 或 4 个，build 部分存在时不能为 0。
func ParseSemVer(s string) (SemVer, error) {
	var parts []uint64
	for _, item := range strings.Split(s, ".") {
		if !isDigits(item) {
			break
		}
		n, err := strconv.ParseUint(item, 10, 64)
		if err != nil {
			return SemVer{}, merr.WrapErrParameterInvalidMsg("invalid semantic version %q: %s", s, err.Error())
		}
		parts = append(parts, n)
	}
	if len(parts) < semVerMinParts || len(parts) > semVerMaxParts {
		return SemVer{}, merr.WrapErrParameterInvalidMsg("invalid semantic version format: %q", s)
	}

	ver := SemVer{
		source: s,
		v:      semver.Version{Major: parts[0], Minor: parts[1], Patch: parts[2]},
	}
	if len(parts) == semVerMaxParts {
		if parts[3] == 0 {
			return SemVer{}, merr.WrapErrParameterInvalidMsg("invalid semantic version %q: build version can not be zero", s)
		}
		ver.build = parts[3]
		ver.v.Build = []string{strconv.FormatUint(parts[3], 10)}
	}
	return ver, nil
}

// MustParseSemVer 与 ParseSemVer 相同，解析失败时 panic。
func MustParseSemVer(s string) SemVer {
	ver, err := ParseSemVer(s)
	if err != nil {
		panic(err)
	}
	return ver
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (v SemVer) Major() uint64  { return v.v.Major }
func (v SemVer) Minor() uint64  { return v.v.Minor }
func (v SemVer) Update() uint64 { return v.v.Patch }

// Build 返回 build 部分，没有时 ok 为 false。
func (v SemVer) Build() (build uint64, ok bool) {
	return v.build, v.build != 0
}

// Semantic 返回对应的 semver.Version，build 部分记录在 Build 元数据中。
func (v SemVer) Semantic() semver.Version {
	return v.v
}

// SemanticPartsOnly 返回只包含数字部分的版本号，例如 "1.2.3.4"。
func (v SemVer) SemanticPartsOnly() string {
	return strings.Join(v.items(), ".")
}

// ToVarName 返回可用于标识符的版本号，例如 "1_2_3_4"。
func (v SemVer) ToVarName() string {
	return strings.Join(v.items(), "_")
}

func (v SemVer) items() []string {
	items := []string{
		strconv.FormatUint(v.v.Major, 10),
		strconv.FormatUint(v.v.Minor, 10),
		strconv.FormatUint(v.v.Patch, 10),
	}
	if v.build != 0 {
		items = append(items, strconv.FormatUint(v.build, 10))
	}
	return items
}

// String 返回解析时的原始字符串。
func (v SemVer) String() string {
	return v.source
}

// Compare 先比较 major.minor.update；相同时有 build 的版本更大，都有 build 时按 build 比较。
func (v SemVer) Compare(o SemVer) int {
	if c := v.v.Compare(o.v); c != 0 {
		return c
	}
	switch {
	case v.build == o.build:
		return 0
	case v.build < o.build:
		return -1
	default:
		return 1
	}
}

// Equal 判断两个版本号的数字部分是否完全相同。
func (v SemVer) Equal(o SemVer) bool {
	return v.Compare(o) == 0
}

// DiffLevel 返回 v 与 o 第一个不同的部分。
func (v SemVer) DiffLevel(o SemVer) DiffLevel {
	switch {
	case v.v.Major != o.v.Major:
		return DiffMajor
	case v.v.Minor != o.v.Minor:
		return DiffMinor
	case v.v.Patch != o.v.Patch:
		return DiffUpdate
	case v.build != o.build:
		return DiffBuild
	default:
		return DiffNone
	}
}

// InRange 判断 major.minor.update 是否满足 semver 范围表达式，例如 ">=1.2.0 <2.0.0"。
func (v SemVer) InRange(expr string) (bool, error) {
	r, err := semver.ParseRange(expr)
	if err != nil {
		return false, merr.WrapErrParameterInvalidMsg("invalid version range %q: %s", expr, err.Error())
	}
	return r(semver.Version{Major: v.v.Major, Minor: v.v.Minor, Patch: v.v.Patch}), nil
}
