package invariant

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestCheckPasses(t *testing.T) {
	assert.True(t, Check(true, "never reported"))
}

func TestCheckReportsViolation(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	if Debug {
		assert.Panics(t, func() { Check(false, "health %d", -1) })
	} else {
		assert.False(t, Check(false, "health %d", -1))
	}
	assert.Contains(t, buf.String(), "health -1")
}
