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
	"runtime"

	"github.com/blocktree/openwallet/log"
)

// DefaultGuard backs TryRun and TryCatch.Do. It catches everything and logs nothing.
var DefaultGuard = NewGuard(nil)

var defaultConfig = NewConfig()

//TryCatch groups the three blocks of a guarded run. Any of them may be nil.
type TryCatch struct {
	Try     func()
	Catch   func(*Exception)
	Finally func()
}

func (tc TryCatch) Do() {
	DefaultGuard.Run(tc.Try, tc.Catch, tc.Finally)
}

// TryRun runs try, hands any exception it raises to catch and runs finally
// exactly once afterwards.
func TryRun(try func(), catch func(*Exception), finally func()) {
	DefaultGuard.Run(try, catch, finally)
}

//Logger receives caught exceptions. *log.OWLogger satisfies it.
type Logger interface {
	Errorf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

//Guard runs blocks under exception protection. A zero Guard uses the
//default config and logs nothing.
type Guard struct {
	Config *Config //守护配置
	Log    Logger  //日志工具
}

func NewGuard(conf *Config) *Guard {
	if conf == nil {
		conf = NewConfig()
	}
	return &Guard{
		Config: conf,
		Log:    log.NewOWLogger("exception"),
	}
}

// Run invokes try. If try panics, catch receives the exception. finally runs
// exactly once on every path, including when catch panics; panics raised by
// catch or finally propagate to the caller.
func (g *Guard) Run(try func(), catch func(*Exception), finally func()) {
	if finally != nil {
		defer finally()
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(runtime.Error); ok && g.config().RethrowRuntimeErrors {
			panic(r)
		}
		e := fromRecovered(r)
		g.logCaught(e)
		if catch != nil {
			catch(e)
		}
	}()
	if try != nil {
		try()
	}
}

// Try runs fn and returns the exception it raised, or nil.
func (g *Guard) Try(fn func()) error {
	var caught *Exception
	g.Run(fn, func(e *Exception) {
		caught = e
	}, nil)
	if caught == nil {
		return nil
	}
	return caught
}

func (g *Guard) config() *Config {
	if g.Config == nil {
		return defaultConfig
	}
	return g.Config
}

func (g *Guard) logCaught(e *Exception) {
	conf := g.config()
	if !conf.LogCaught || g.Log == nil {
		return
	}
	g.Log.Errorf("caught %s: %v", e.Name, e)
	if conf.LogStack {
		g.Log.Debugf("%+v", e)
	}
}
