package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customerio/lz4p"
	"github.com/customerio/lz4p/internal/lz4ptest"
	"github.com/customerio/lz4p/sink"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func run(args ...string) int {
	return RunCmdline(append([]string{"unlz4p"}, args...))
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	data := lz4ptest.Payload(100 * 1000)

	packed, err := lz4ptest.Pack(data, 4096)
	require.NoError(t, err)

	in := writeFile(t, dir, "in.lz4p", packed)

	for i, flags := range [][]string{
		nil,
		{"--stream"},
		{"-s", "-l", "debug"},
	} {
		out := filepath.Join(dir, "out.dec")
		args := append(append([]string{}, flags...), in, out)

		require.Equal(t, Success, run(args...), "case %d", i)

		found, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(data, found), "case %d", i)
	}
}

func TestDecodeFormats(t *testing.T) {
	dir := t.TempDir()
	data := lz4ptest.Payload(10 * 1000)

	packed, err := lz4ptest.Pack(data, 1000)
	require.NoError(t, err)

	in := writeFile(t, dir, "in.lz4p", packed)

	for _, format := range []sink.Format{sink.Raw, sink.Snappy, sink.Zstd} {
		out := filepath.Join(dir, "out."+format.String())
		require.Equal(t, Success, run("--format", format.String(), in, out))

		f, err := os.Open(out)
		require.NoError(t, err)

		r, err := sink.NewReader(f, format)
		require.NoError(t, err)

		found, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(data, found), format.String())

		r.Close()
		f.Close()
	}
}

func TestEmptyContainer(t *testing.T) {
	dir := t.TempDir()

	packed, err := lz4ptest.Pack(nil, 4096)
	require.NoError(t, err)

	out := filepath.Join(dir, "out")
	require.Equal(t, Success, run(writeFile(t, dir, "in", packed), out))

	found, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()

	packed, err := lz4ptest.Pack(lz4ptest.Payload(5000), 1000)
	require.NoError(t, err)

	good := writeFile(t, dir, "good.lz4p", packed)

	badMagic := append([]byte("LZ4X"), packed[4:]...)
	truncated := packed[:len(packed)-10]
	shortHeader := packed[:lz4p.HeaderSize-1]

	garbage := &lz4ptest.Container{
		Header: lz4p.Header{OriginalSize: 10, BlockSize: 10, BlockCount: 1},
		Bodies: [][]byte{{0xf0, 0xff, 0xff, 0xff}},
	}

	out := filepath.Join(dir, "out")

	var tests = []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, BadArgs},
		{"one arg", []string{good}, BadArgs},
		{"three args", []string{good, out, out}, BadArgs},
		{"unknown flag", []string{"--nope", good, out}, BadArgs},
		{"bad format", []string{"--format", "gzip", good, out}, BadArgs},
		{"bad limit", []string{"--max-input", "lots", good, out}, BadArgs},
		{"bad log level", []string{"--log-level", "chatty", good, out}, BadArgs},
		{"missing input", []string{filepath.Join(dir, "missing"), out}, OpenInput},
		{"bad output", []string{good, filepath.Join(dir, "no", "such", "dir")}, OpenOutput},
		{"input too large", []string{"--max-input", "10", good, out}, InputTooLarge},
		{"truncated", []string{writeFile(t, dir, "truncated", truncated), out}, ShortRead},
		{"truncated stream", []string{"-s", filepath.Join(dir, "truncated"), out}, ShortRead},
		{"short header", []string{writeFile(t, dir, "short", shortHeader), out}, ShortRead},
		{"output too large", []string{"--max-output", "100", good, out}, OutputTooLarge},
		{"bad magic", []string{writeFile(t, dir, "magic", badMagic), out}, MalformedHeader},
		{"bad magic stream", []string{"--stream", filepath.Join(dir, "magic"), out}, MalformedHeader},
		{"corrupt block", []string{writeFile(t, dir, "garbage", garbage.Bytes()), out}, BlockDecode},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, run(test.args...), test.name)
	}
}

func TestDecodeExitCode(t *testing.T) {
	assert.Equal(t, MalformedHeader, decodeExitCode(&lz4p.Error{Kind: lz4p.MalformedHeader}).Code)
	assert.Equal(t, ShortRead, decodeExitCode(&lz4p.Error{Kind: lz4p.TruncatedInput}).Code)
	assert.Equal(t, ShortRead, decodeExitCode(&lz4p.Error{Kind: lz4p.InputOverrun}).Code)
	assert.Equal(t, BlockDecode, decodeExitCode(&lz4p.Error{Kind: lz4p.BlockDecodeError}).Code)
}
