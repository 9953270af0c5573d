// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// unexpectedCode 为无法识别的错误统一使用的错误码。
const unexpectedCode int32 = (1 << 16) - 1

type ErrorType int32

const (
	SystemError ErrorType = 0
	InputError  ErrorType = 1
)

var ErrorTypeName = map[ErrorType]string{
	SystemError: "system_error",
	InputError:  "input_error",
}

func (err ErrorType) String() string {
	return ErrorTypeName[err]
}

// 叶子错误定义在这里。
// 新增错误前请先确认下面已有的错误能否复用。
// 命名规则：Err + 相关前缀 + 错误名。
var (
	// Decode 相关：字节流内容与约定的线格式不符。
	ErrMalformedLength  = newCodecError("malformed length prefix", 100, false, WithErrorType(InputError))
	ErrTruncatedStream  = newCodecError("truncated stream", 101, false, WithErrorType(InputError))
	ErrValueOverflow    = newCodecError("value too long to fit in integer", 102, false, WithErrorType(InputError))
	ErrMalformedText    = newCodecError("malformed text", 103, false, WithErrorType(InputError))
	ErrMalformedDecimal = newCodecError("malformed decimal", 104, false, WithErrorType(InputError))

	// Encode 相关：必填字段缺失时写出没有意义，调用方应通过 null 标记位处理。
	ErrValueAbsent = newCodecError("required value absent", 105, false)

	// Version 相关
	ErrVersionInvalid = newCodecError("invalid version", 200, false)
	// ErrVersionSkew 只由调用方在编解码层之上做版本校验时使用，编解码器自身从不返回。
	ErrVersionSkew = newCodecError("version skew", 201, false)

	// IO 相关
	ErrIoFailed = newCodecError("IO failed", 1001, false)

	// Parameter 相关
	ErrParameterInvalid = newCodecError("invalid parameter", 1100, false)

	// 不要导出，只用于把未知错误转换成 codecError。
	errUnexpected = newCodecError("unexpected error", unexpectedCode, false)
)

type errorOption func(*codecError)

func WithDetail(detail string) errorOption {
	return func(err *codecError) {
		err.detail = detail
	}
}

func WithErrorType(etype ErrorType) errorOption {
	return func(err *codecError) {
		err.errType = etype
	}
}

type codecError struct {
	name      string
	msg       string
	detail    string
	retriable bool
	errCode   int32
	errType   ErrorType
}

func newCodecError(msg string, code int32, retriable bool, options ...errorOption) codecError {
	err := codecError{
		name:      strings.ReplaceAll(msg, " ", "_"),
		msg:       msg,
		detail:    msg,
		retriable: retriable,
		errCode:   code,
	}

	for _, option := range options {
		option(&err)
	}
	return err
}

func (e codecError) code() int32 {
	return e.errCode
}

func (e codecError) Error() string {
	return e.msg
}

func (e codecError) Detail() string {
	return e.detail
}

func (e codecError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(codecError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// 多错误的 cause 定义为最后一个错误，这样 Code 等方法才能正常工作。
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
