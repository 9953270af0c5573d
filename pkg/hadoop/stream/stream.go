// Package stream 提供与 java.io.DataInput/DataOutput 以及 Hadoop WritableUtils
// 字节级兼容的读写端口。
//
// 约定：
//   - 所有多字节数值均为大端序；
//   - 读取时遇到流提前结束统一返回 merr.ErrTruncatedStream，不会直接返回 io.EOF；
//   - 底层 io.Writer / io.Reader 的其它错误统一转换为 merr.ErrIoFailed。
package stream

// DataInput 是编解码器读取字节的端口。
type DataInput interface {
	// ReadByte 读取一个字节。
	ReadByte() (byte, error)

	// ReadFully 读满 p，不足时返回 ErrTruncatedStream。
	ReadFully(p []byte) error

	// ReadBoolean 读取一个字节，非 0 即为 true。
	ReadBoolean() (bool, error)

	// ReadFloat 读取 4 字节大端 IEEE-754 单精度浮点数。
	ReadFloat() (float32, error)

	// ReadDouble 读取 8 字节大端 IEEE-754 双精度浮点数。
	ReadDouble() (float64, error)
}

// DataOutput 是编解码器写出字节的端口。
type DataOutput interface {
	WriteByte(b byte) error
	Write(p []byte) (int, error)

	// WriteBoolean 写出一个字节：true 为 1，false 为 0。
	WriteBoolean(v bool) error

	// WriteFloat 写出 4 字节大端 IEEE-754 单精度浮点数。
	WriteFloat(v float32) error

	// WriteDouble 写出 8 字节大端 IEEE-754 双精度浮点数。
	WriteDouble(v float64) error
}
