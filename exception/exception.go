/*
 * Copyright 2018 The OpenWallet Authors
 * This file is part of the OpenWallet library.
 *
 * The OpenWallet library is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * The OpenWallet library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 * GNU Lesser General Public License for more details.
 */

package exception

import (
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
)

const (
	DefaultName = "Exception"    // raised by New, Wrap, ThrowString
	PanicName   = "Panic"        // synthesized from a foreign panic value
	RuntimeName = "RuntimeError" // synthesized from a runtime.Error
)

const maxStackDepth = 32

//Exception is the value carried by a panic raised through this package.
type Exception struct {
	Name  string                 //异常类型
	Info  map[string]interface{} //附加信息
	Value interface{}            //原始panic值, 仅在从外部panic转换时设置

	message string
	cause   error
	stack   []uintptr
}

// New creates an exception with the given message.
func New(message string) *Exception {
	return newException(message, nil)
}

// Newf creates an exception with a formatted message.
func Newf(format string, args ...interface{}) *Exception {
	return newException(fmt.Sprintf(format, args...), nil)
}

// Wrap creates an exception caused by err. A nil err yields a nil
// *Exception; check it before storing the result in an error variable.
func Wrap(err error, message string) *Exception {
	if err == nil {
		return nil
	}
	return newException(message, err)
}

func newException(message string, cause error) *Exception {
	var pcs [maxStackDepth]uintptr
	// skip runtime.Callers, newException and the exported constructor
	n := runtime.Callers(3, pcs[:])
	return &Exception{
		Name:    DefaultName,
		message: message,
		cause:   cause,
		stack:   pcs[:n],
	}
}

// fromRecovered turns a value returned by recover into an exception.
// An *Exception is returned as is.
func fromRecovered(r interface{}) *Exception {
	var e *Exception
	switch v := r.(type) {
	case *Exception:
		return v
	case runtime.Error:
		e = newException("", v)
		e.Name = RuntimeName
	case error:
		e = newException("", v)
		e.Name = PanicName
	default:
		e = newException(fmt.Sprint(v), nil)
		e.Name = PanicName
	}
	e.Value = r
	return e
}

// WithInfo attaches additional context and returns e.
func (e *Exception) WithInfo(key string, value interface{}) *Exception {
	if e.Info == nil {
		e.Info = make(map[string]interface{})
	}
	e.Info[key] = value
	return e
}

// Message returns the human readable message. For an exception wrapping
// an error without a message of its own, the error text is used.
func (e *Exception) Message() string {
	if e.message == "" && e.cause != nil {
		return e.cause.Error()
	}
	return e.message
}

func (e *Exception) Error() string {
	switch {
	case e.cause == nil:
		return e.message
	case e.message == "":
		return e.cause.Error()
	default:
		return e.message + ": " + e.cause.Error()
	}
}

func (e *Exception) Cause() error  { return e.cause }
func (e *Exception) Unwrap() error { return e.cause }

// StackTrace returns the frames captured where the exception was created.
func (e *Exception) StackTrace() errors.StackTrace {
	frames := make([]errors.Frame, len(e.stack))
	for i, pc := range e.stack {
		frames[i] = errors.Frame(pc)
	}
	return frames
}

// Format supports %s, %v, %q and %+v, the last one printing the stack trace.
func (e *Exception) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.Name+": "+e.Error())
			e.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

//Throw raises v. An *Exception keeps its identity, anything else is
//converted by the guard that catches it.
func Throw(v interface{}) {
	panic(v)
}

//ThrowString raises a new exception carrying message.
func ThrowString(message string) {
	panic(newException(message, nil))
}

//ThrowException re-raises e unchanged.
func ThrowException(e *Exception) {
	if e == nil {
		panic(newException("nil exception", nil))
	}
	panic(e)
}
