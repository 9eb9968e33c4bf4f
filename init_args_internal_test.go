// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jvminit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsBuilderDefaults(t *testing.T) {
	args, err := NewArgsBuilder().Build()
	require.NoError(t, err)

	t.Cleanup(func() { _ = args.Close() })

	assert.EqualValues(t, V1, args.record.Version())
	assert.False(t, args.record.IgnoreUnrecognized())
	assert.Equal(t, 0, args.record.NumOptions())
}

func TestArgsBuilderBuildRecord(t *testing.T) {
	args, err := NewArgsBuilder().
		Option("-Xcheck:jni").
		Option("vfprintf").
		Version(V8).
		IgnoreUnrecognized(true).
		Build()
	require.NoError(t, err)

	t.Cleanup(func() { _ = args.Close() })

	assert.EqualValues(t, 0x00010008, args.record.Version())
	assert.True(t, args.record.IgnoreUnrecognized())

	require.Equal(t, 1, args.record.NumOptions())
	assert.Equal(t, "-Xcheck:jni", args.record.OptionString(0))
	assert.Nil(t, args.record.OptionExtra(0))
}

func TestArgsBuilderLastWriteWins(t *testing.T) {
	chained, err := NewArgsBuilder().
		Version(V2).
		IgnoreUnrecognized(true).
		Version(V8).
		IgnoreUnrecognized(false).
		Build()
	require.NoError(t, err)

	t.Cleanup(func() { _ = chained.Close() })

	direct, err := NewArgsBuilder().
		Version(V8).
		IgnoreUnrecognized(false).
		Build()
	require.NoError(t, err)

	t.Cleanup(func() { _ = direct.Close() })

	assert.Equal(t, direct.record.Version(), chained.record.Version())
	assert.Equal(t,
		direct.record.IgnoreUnrecognized(),
		chained.record.IgnoreUnrecognized(),
	)
}

func TestArgsBuilderBuildPreservesOrder(t *testing.T) {
	opts := []string{"-Xmx512m", "-Djava.class.path=.", "-Xint"}

	builder := NewArgsBuilder()
	for _, opt := range opts {
		builder.Option(opt)
	}

	args, err := builder.Build()
	require.NoError(t, err)

	t.Cleanup(func() { _ = args.Close() })

	require.Equal(t, len(opts), args.record.NumOptions())

	for idx, opt := range opts {
		assert.Equal(t, opt, args.record.OptionString(idx))
	}
}
