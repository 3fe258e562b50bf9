package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EricLagergren/bitaddr"
)

func TestRunIndices(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-width", "64", "0", "63", "64", "130"}, &out, io.Discard))

	s := out.String()
	require.Contains(t, s, "native w=64 shift=6 mask=0x3f span=64")
	require.Contains(t, s, "index")
	require.Contains(t, s, "130")
}

func TestRunKeys(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-table", "digest", "-width", "8", "-keys", "-hash", "xxh3", "alice"}, &out, io.Discard))

	s := out.String()
	require.Contains(t, s, "digest w=8 shift=4 mask=0xf span=16")
	require.Contains(t, s, "alice")
}

func TestRunRejectsUnsupportedWidth(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-width", "17", "5"}, &out, io.Discard)
	require.ErrorIs(t, err, bitaddr.ErrUnsupportedWordWidth)
	require.Empty(t, out.String())
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"table", []string{"-table", "huge"}},
		{"hash", []string{"-keys", "-hash", "md5", "x"}},
		{"index", []string{"-width", "64", "x"}},
		{"flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.Error(t, run(tt.args, &out, io.Discard))
			require.Empty(t, out.String())
		})
	}
}
