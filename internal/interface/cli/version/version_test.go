package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YoshitsuguKoike/filerepo/internal/buildinfo"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Run)
}

func TestVersionCommand_Output(t *testing.T) {
	orig := buildinfo.Version
	buildinfo.Version = "v1.2.3"
	defer func() { buildinfo.Version = orig }()

	cmd := NewCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.Run(cmd, []string{})

	assert.Contains(t, buf.String(), "filerepo version v1.2.3")
	assert.Contains(t, buf.String(), runtime.GOOS+"/"+runtime.GOARCH)
}

func TestGetVersion_EmptyFallsBackToDev(t *testing.T) {
	orig := buildinfo.Version
	buildinfo.Version = ""
	defer func() { buildinfo.Version = orig }()

	assert.Equal(t, "dev", buildinfo.GetVersion())
}
