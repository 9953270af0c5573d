package log

import (
	"go.uber.org/zap"
)

const (
	FieldNameModule    = "module"
	FieldNameComponent = "component"
	FieldNameOp        = "op"
	FieldNameKind      = "kind"
	FieldNameSize      = "size"
)

// FieldModule 返回一个包含模块名的 zap 字段。
func FieldModule(module string) zap.Field {
	return zap.String(FieldNameModule, module)
}

// FieldComponent 返回一个包含组件名的 zap 字段。
func FieldComponent(component string) zap.Field {
	return zap.String(FieldNameComponent, component)
}

// FieldOp 返回一个包含编解码操作名（如 write、read_versioned）的 zap 字段。
func FieldOp(op string) zap.Field {
	return zap.String(FieldNameOp, op)
}

// FieldKind 返回一个包含值类型名的 zap 字段。
func FieldKind(kind string) zap.Field {
	return zap.String(FieldNameKind, kind)
}

// FieldSize 返回一个包含字节数的 zap 字段。
func FieldSize(size int) zap.Field {
	return zap.Int(FieldNameSize, size)
}
