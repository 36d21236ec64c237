// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec_test

import (
	"errors"
	"testing"

	"github.com/relee/parexec"
	"github.com/stretchr/testify/require"
)

func TestPromiseFutureRoundTripValue(t *testing.T) {
	chk := require.New(t)

	p := parexec.NewPromise[int]()
	f := p.GetFuture()

	p.Set(42)

	v, err := f.Get()
	chk.NoError(err)
	chk.Equal(42, v)
}

func TestPromiseFutureRoundTripFailure(t *testing.T) {
	chk := require.New(t)

	p := parexec.NewPromise[string]()
	f := p.GetFuture()

	sentinel := errors.New("boom")
	p.SetFailure(sentinel)

	v, err := f.Get()
	chk.ErrorIs(err, sentinel)
	chk.Equal("", v)
}

func TestPromiseSecondSetIsIgnored(t *testing.T) {
	chk := require.New(t)

	p := parexec.NewPromise[int]()
	f := p.GetFuture()

	p.Set(1)
	p.Set(2)
	p.SetFailure(errors.New("too late"))

	v, err := f.Get()
	chk.NoError(err)
	chk.Equal(1, v)
}

func TestPromiseDoubleFutureExtractionPanics(t *testing.T) {
	chk := require.New(t)

	p := parexec.NewPromise[int]()
	_ = p.GetFuture()

	chk.PanicsWithValue(parexec.ErrDoubleFutureExtraction, func() {
		_ = p.GetFuture()
	})
}

func TestFutureDoubleRetrievalPanics(t *testing.T) {
	chk := require.New(t)

	p := parexec.NewPromise[int]()
	f := p.GetFuture()
	p.Set(7)

	_, err := f.Get()
	chk.NoError(err)

	chk.PanicsWithValue(parexec.ErrDoubleRetrieval, func() {
		_, _ = f.Get()
	})
}

func TestFutureReadyIsNonDestructive(t *testing.T) {
	chk := require.New(t)

	p := parexec.NewPromise[int]()
	f := p.GetFuture()

	chk.False(f.Ready())
	p.Set(9)
	chk.True(f.Ready())
	chk.True(f.Ready())

	v, err := f.Get()
	chk.NoError(err)
	chk.Equal(9, v)
}
