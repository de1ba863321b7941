package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressManagerNonInteractiveLogsLines(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManager{writer: &buf, interactive: false}

	pm.Initialize(2)
	pm.StartTask("f1")
	pm.CompleteTask("f1", true)
	pm.StartTask("f2")
	pm.CompleteTask("f2", false)
	pm.Finish()

	out := buf.String()
	assert.Contains(t, out, "[1/2] f1: ok")
	assert.Contains(t, out, "[2/2] f2: irreducible")
}

func TestProgressManagerFinishWithoutBarIsNoop(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManager{writer: &buf, interactive: false}
	pm.Initialize(0)
	pm.Finish()
	assert.Empty(t, buf.String())
}
