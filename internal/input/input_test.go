package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	in, rest := Parse([]byte("aad\x1b[D\x1b[C\x1b[C q"))
	assert.Empty(t, rest)
	assert.Equal(t, 3, in.Left)
	assert.Equal(t, 3, in.Right)
	assert.True(t, in.Fire)
	assert.True(t, in.Quit)
	assert.False(t, in.Confirm)
	assert.Equal(t, -1, in.Pointer)
}

func TestParseConfirm(t *testing.T) {
	in, _ := Parse([]byte("\r"))
	assert.True(t, in.Confirm)
	assert.True(t, in.Start())

	in, _ = Parse([]byte("\x1b[A"))
	assert.True(t, in.Fire, "up arrow fires")
	assert.True(t, in.Start())
}

func TestParseMouse(t *testing.T) {
	in, rest := Parse([]byte("\x1b[<35;12;7M\x1b[<35;40;7M"))
	assert.Empty(t, rest)
	assert.Equal(t, 40, in.Pointer, "last report wins")
	assert.Zero(t, in.Left)
	assert.Zero(t, in.Right)
}

func TestParseIncompleteSequence(t *testing.T) {
	in, rest := Parse([]byte("d\x1b[<35;1"))
	assert.Equal(t, 1, in.Right)
	assert.Equal(t, []byte("\x1b[<35;1"), rest)

	in, rest = Parse(append(rest, []byte("2;3M")...))
	assert.Empty(t, rest)
	assert.Equal(t, 12, in.Pointer)

	_, rest = Parse([]byte("\x1b"))
	assert.Equal(t, []byte("\x1b"), rest)
}

func TestReadInputDetectsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("ll")))

	var total int
	require.Eventually(t, func() bool {
		in := ReadInput(s)
		total += in.Right
		return in.Closed
	}, time.Second, time.Millisecond)
	assert.Equal(t, 2, total)
}
