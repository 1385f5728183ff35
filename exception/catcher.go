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
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Catcher collects the exceptions raised by many guarded runs. The zero value
// uses DefaultGuard. It is safe for concurrent use.
type Catcher struct {
	Guard *Guard

	mu         sync.Mutex
	exceptions []*Exception
}

func NewCatcher(g *Guard) *Catcher {
	return &Catcher{Guard: g}
}

// Try runs fn and records the exception it raised. The exception is also
// returned, nil when fn completed normally.
func (c *Catcher) Try(fn func()) *Exception {
	g := c.Guard
	if g == nil {
		g = DefaultGuard
	}

	var caught *Exception
	g.Run(fn, func(e *Exception) {
		caught = e
		c.mu.Lock()
		c.exceptions = append(c.exceptions, e)
		c.mu.Unlock()
	}, nil)
	return caught
}

func (c *Catcher) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.exceptions)
}

// Exceptions returns a copy of the recorded exceptions in record order.
func (c *Catcher) Exceptions() []*Exception {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Exception, len(c.exceptions))
	copy(out, c.exceptions)
	return out
}

// Err returns nil if nothing was caught, otherwise a *multierror.Error
// holding every recorded exception.
func (c *Catcher) Err() error {
	var merr *multierror.Error
	for _, e := range c.Exceptions() {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}
