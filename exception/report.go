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
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

type report struct {
	Name    string                 `json:"name,omitempty"`
	Message string                 `json:"message"`
	Cause   string                 `json:"cause,omitempty"`
	Info    map[string]interface{} `json:"info,omitempty"`
	Stack   []string               `json:"stack,omitempty"`
}

func (e *Exception) MarshalJSON() ([]byte, error) {
	r := report{
		Name:    e.Name,
		Message: e.message,
		Info:    e.Info,
	}
	if e.cause != nil {
		r.Cause = e.cause.Error()
	}
	for _, f := range e.StackTrace() {
		r.Stack = append(r.Stack, fmt.Sprintf("%n (%s:%d)", f, f, f))
	}
	return json.Marshal(&r)
}

// ParseReport decodes a report produced by MarshalJSON. The stack is not
// restored; a cause comes back as an error carrying the cause text.
func ParseReport(data []byte) (*Exception, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid exception report")
	}

	doc := gjson.ParseBytes(data)
	msg := doc.Get("message")
	if !msg.Exists() {
		return nil, errors.New("exception report has no message")
	}

	e := &Exception{
		Name:    doc.Get("name").String(),
		message: msg.String(),
	}
	if e.Name == "" {
		e.Name = DefaultName
	}
	if cause := doc.Get("cause").String(); cause != "" {
		e.cause = errors.New(cause)
	}
	doc.Get("info").ForEach(func(key, value gjson.Result) bool {
		e.WithInfo(key.String(), value.Value())
		return true
	})

	return e, nil
}
