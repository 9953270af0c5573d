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
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code 返回给定错误对应的错误码。
// nil 返回 0，无法识别的错误统一返回 unexpectedCode。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case codecError:
		return specificErr.code()
	default:
		return errUnexpected.code()
	}
}

// CodeName 返回错误码的可读名称，主要用于监控标签。
func CodeName(err error) string {
	if err == nil {
		return "ok"
	}
	cause := errors.Cause(err)
	if specificErr, ok := cause.(codecError); ok {
		return specificErr.name
	}
	return "unexpected"
}

func IsRetryableErr(err error) bool {
	if err, ok := err.(codecError); ok {
		return err.retriable
	}

	return false
}

func GetErrorType(err error) ErrorType {
	if codecErr, ok := errors.Cause(err).(codecError); ok {
		return codecErr.errType
	}
	return SystemError
}

// IsDecodeErr 判断 err 是否属于输入字节流本身不合法导致的解码错误。
func IsDecodeErr(err error) bool {
	return GetErrorType(err) == InputError
}

// Decode related
func WrapErrMalformedLength(what string, length int64, msg ...string) error {
	err := wrapFields(ErrMalformedLength,
		value("what", what),
		value("length", length),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrMalformedLengthRange(what string, length, limit int64, msg ...string) error {
	err := wrapFields(ErrMalformedLength,
		value("what", what),
		bound("length", length, 0, limit),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// WrapErrTruncatedStream 把底层读取错误转换为 ErrTruncatedStream。
// io.EOF / io.ErrUnexpectedEOF 之外的错误转换为 ErrIoFailed，保留原始描述。
func WrapErrTruncatedStream(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTruncatedStream) || errors.Is(err, ErrIoFailed) {
		return err
	}
	if errors.IsAny(err, io.EOF, io.ErrUnexpectedEOF) {
		return wrapFieldsWithDesc(ErrTruncatedStream, err.Error(), value("what", what))
	}
	return wrapFieldsWithDesc(ErrIoFailed, err.Error(), value("what", what))
}

func WrapErrValueOverflow(what string, actual int64, msg ...string) error {
	err := wrapFields(ErrValueOverflow,
		value("what", what),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrMalformedText(length int, msg ...string) error {
	err := wrapFields(ErrMalformedText, value("length", length))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrMalformedDecimal(text string, msg ...string) error {
	err := wrapFields(ErrMalformedDecimal, value("text", text))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Encode related
func WrapErrValueAbsent(what string, msg ...string) error {
	err := wrapFields(ErrValueAbsent, value("what", what))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Version related
func WrapErrVersionInvalid(version int64, msg ...string) error {
	err := wrapFields(ErrVersionInvalid, value("version", version))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrVersionSkew(expected, actual any, msg ...string) error {
	err := wrapFields(ErrVersionSkew,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// IO related
func WrapErrIoFailed(key string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrIoFailed, err.Error(), value("key", key))
}

// Parameter related
func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalidMsg(fmtMsg string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, fmtMsg, args...)
}

func wrapFields(err codecError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.detail = err.msg
	return err
}

func wrapFieldsWithDesc(err codecError, desc string, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.msg += ": " + desc
	err.detail = err.msg
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}

type boundField struct {
	name  string
	value any
	lower any
	upper any
}

func bound(name string, value, lower, upper any) boundField {
	return boundField{
		name,
		value,
		lower,
		upper,
	}
}

func (f boundField) String() string {
	return fmt.Sprintf("%v out of range %v <= %s <= %v", f.value, f.lower, f.name, f.upper)
}
