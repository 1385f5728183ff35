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
	"github.com/astaxie/beego/config"
	"github.com/pkg/errors"
)

const (
	keyLogCaught            = "log_caught"
	keyLogStack             = "log_stack"
	keyRethrowRuntimeErrors = "rethrow_runtime_errors"
)

//Config controls how a Guard treats caught exceptions.
type Config struct {
	LogCaught            bool //记录捕获的异常
	LogStack             bool //记录异常堆栈
	RethrowRuntimeErrors bool //不捕获runtime.Error
}

func NewConfig() *Config {
	return &Config{}
}

//LoadConfig reads guard options from c. Missing keys keep their defaults.
func LoadConfig(c config.Configer) (*Config, error) {
	if c == nil {
		return nil, errors.New("exception config is nil")
	}

	var (
		conf = NewConfig()
		err  error
	)

	if conf.LogCaught, err = loadBool(c, keyLogCaught, conf.LogCaught); err != nil {
		return nil, err
	}
	if conf.LogStack, err = loadBool(c, keyLogStack, conf.LogStack); err != nil {
		return nil, err
	}
	if conf.RethrowRuntimeErrors, err = loadBool(c, keyRethrowRuntimeErrors, conf.RethrowRuntimeErrors); err != nil {
		return nil, err
	}

	return conf, nil
}

//LoadConfigFile reads guard options from an ini file.
func LoadConfigFile(path string) (*Config, error) {
	c, err := config.NewConfig("ini", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open exception config %s", path)
	}
	return LoadConfig(c)
}

func loadBool(c config.Configer, key string, def bool) (bool, error) {
	if c.String(key) == "" {
		return def, nil
	}
	v, err := c.Bool(key)
	if err != nil {
		return def, errors.Wrapf(err, "invalid value for %s", key)
	}
	return v, nil
}
