// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	vectors := []struct {
		err  Error
		want string
	}{
		{Error{}, "unknown error"},
		{Error{Code: Malformed, Pkg: "container"}, "container: malformed container"},
		{Error{Code: Malformed, Pkg: "prefix", Msg: "padding out of range"}, "prefix: malformed container: padding out of range"},
		{Error{Code: Unsupported, Pkg: "container", Msg: "version 2"}, "container: unsupported version: version 2"},
		{Error{Code: Empty, Pkg: "prefix"}, "prefix: empty input"},
	}
	for i, v := range vectors {
		assert.Equal(t, v.want, v.err.Error(), "test %d", i)
	}
}

func TestPredicates(t *testing.T) {
	err := error(Error{Code: Malformed})
	assert.True(t, IsMalformed(err))
	assert.False(t, IsUnsupported(err))
	assert.False(t, IsEmpty(err))
	assert.False(t, IsMalformed(io.EOF))
	assert.False(t, IsMalformed(nil))
	assert.True(t, IsEmpty(Error{Code: Empty}))
	assert.True(t, IsUnsupported(Error{Code: Unsupported}))
	assert.True(t, IsInternal(Error{Code: Internal}))
	assert.True(t, IsInvalid(Error{Code: Invalid}))
	assert.True(t, IsClosed(Error{Code: Closed}))
}

func TestRecover(t *testing.T) {
	want := Error{Code: Malformed, Msg: "truncated"}
	got := func() (err error) {
		defer Recover(&err)
		Panic(want)
		return nil
	}()
	assert.Equal(t, error(want), got)

	assert.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("not an error raised by Panic")
	})
}
