package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	assert.Equal(t, Info{Version: "N/A", Date: "N/A", Commit: "N/A"}, Get())
}

func TestPrintBuildData(t *testing.T) {
	orig := buildVersion
	buildVersion = "v1.2.3"
	t.Cleanup(func() { buildVersion = orig })

	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}
