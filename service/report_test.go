package service

import (
	"bytes"
	"testing"

	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *BatchReport {
	cfg := analyzer.NewCFG(1)
	cfg.Finalize()
	cfs := analyzer.NewControlFlowStructure()
	cfs.Build(cfg)

	return &BatchReport{
		RunID:     "run-1",
		Succeeded: 1,
		Failed:    1,
		Results: []FunctionResult{
			{Function: domain.Function{Name: "main", Offset: 0x1000}, CFG: cfg, Tree: cfs, Ok: true},
			{Function: domain.Function{Name: "broken"}, Err: domain.NewIrreducibleError("broken")},
		},
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(), "json"))
	out := buf.String()
	assert.Contains(t, out, `"run_id": "run-1"`)
	assert.Contains(t, out, `"name": "main"`)
	assert.Contains(t, out, `"error"`)
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(), "yaml"))
	out := buf.String()
	assert.Contains(t, out, "run_id: run-1")
	assert.Contains(t, out, "name: main")
}

func TestWriteReportDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(), "dot"))
	assert.Contains(t, buf.String(), "// function main")
}

func TestWriteReportUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), "xml")
	require.Error(t, err)
	var domainErr domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeUnsupportedFormat, domainErr.Code)
}
