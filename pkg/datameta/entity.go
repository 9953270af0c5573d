// Package datameta 定义生成的 DataMeta 数据类型共用的接口与工具。
package datameta

import (
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

// Entity 是所有生成的 DataMeta 类型的公共接口。
type Entity interface {
	Version() int32
}

// Verifiable 表示可以自我校验的实体。
type Verifiable interface {
	Entity
	Verify() error
}

// Migrator 将某一版本的实体迁移为另一版本。
type Migrator[S, D any] interface {
	Migrate(src S, extras ...any) (D, error)
}

// MigratorFunc 将普通函数适配为 Migrator。
type MigratorFunc[S, D any] func(src S, extras ...any) (D, error)

func (f MigratorFunc[S, D]) Migrate(src S, extras ...any) (D, error) {
	return f(src, extras...)
}

// VerifyAll 依次校验所有实体，返回合并后的错误。
func VerifyAll(entities ...Verifiable) error {
	errs := make([]error, 0, len(entities))
	for _, e := range entities {
		errs = append(errs, e.Verify())
	}
	return merr.Combine(errs...)
}

// CheckVersion 在实体版本与期望版本不一致时返回 ErrVersionSkew。
// 编解码层从不调用它，供需要严格版本策略的调用方使用。
func CheckVersion(expected int32, e Entity) error {
	if actual := e.Version(); actual != expected {
		return merr.WrapErrVersionSkew(expected, actual)
	}
	return nil
}
