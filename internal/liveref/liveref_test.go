// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package liveref_test

import (
	"sync"
	"testing"

	"github.com/example/tpl-go/internal/liveref"
	"github.com/stretchr/testify/require"
)

func TestRefReleasesExactlyOnceAtZero(t *testing.T) {
	chk := require.New(t)

	var released int
	r := liveref.New(42, func(v int) {
		released++
		chk.Equal(42, v)
	})
	r.Add()
	r.Add()
	chk.Equal(0, released)

	r.Release()
	chk.Equal(0, released)
	r.Release()
	chk.Equal(0, released)
	r.Release()
	chk.Equal(1, released)
}

func TestRefReleaseUnderConcurrentAdd(t *testing.T) {
	chk := require.New(t)

	var released int32
	r := liveref.New(struct{}{}, func(struct{}) {
		released++
	})

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		r.Add()
		go func() {
			defer wg.Done()
			r.Release()
		}()
	}
	wg.Wait()
	chk.EqualValues(0, released)
	r.Release()
	chk.EqualValues(1, released)
}

func TestRefPanicsOnOverRelease(t *testing.T) {
	chk := require.New(t)
	r := liveref.New(1, nil)
	r.Release()
	chk.Panics(func() { r.Release() })
}
