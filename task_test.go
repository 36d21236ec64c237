// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec_test

import (
	"errors"
	"testing"

	"github.com/relee/parexec"
	"github.com/stretchr/testify/require"
)

func TestMakeTaskNilFuncPanics(t *testing.T) {
	chk := require.New(t)

	chk.Panics(func() {
		_, _ = parexec.MakeTask[int](nil)
	})
}

func TestPackagedTaskRunDeliversValue(t *testing.T) {
	chk := require.New(t)

	task, future := parexec.MakeTask(func() (int, error) {
		return 5, nil
	})
	task.Run()

	v, err := future.Get()
	chk.NoError(err)
	chk.Equal(5, v)
}

func TestPackagedTaskRunDeliversFailure(t *testing.T) {
	chk := require.New(t)

	sentinel := errors.New("task failed")
	task, future := parexec.MakeTask(func() (int, error) {
		return 0, sentinel
	})
	task.Run()

	_, err := future.Get()
	chk.ErrorIs(err, sentinel)
}

func TestPackagedTaskRunCapturesPanic(t *testing.T) {
	chk := require.New(t)

	task, future := parexec.MakeTask(func() (int, error) {
		panic("kaboom")
	})
	task.Run()

	_, err := future.Get()
	chk.ErrorIs(err, parexec.ErrTaskPanic)
}

func TestPackagedTaskSecondRunPanics(t *testing.T) {
	chk := require.New(t)

	task, _ := parexec.MakeTask(func() (int, error) {
		return 0, nil
	})
	task.Run()

	chk.Panics(func() {
		task.Run()
	})
}
