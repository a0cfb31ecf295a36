package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyBuildSettings(t *testing.T) {
	assert := assert.New(t)

	info := Info{Version: "dev", GitCommit: "none", BuildTime: "unknown"}
	applyBuildSettings(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	})

	assert.Equal("0123456-dirty", info.GitCommit)
	assert.Equal("2026-01-02T03:04:05Z", info.BuildTime)
}

func TestApplyBuildSettingsKeepsLdflags(t *testing.T) {
	info := Info{GitCommit: "abcdefg", BuildTime: "2024-04-27T15:04:05Z"}
	applyBuildSettings(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	})

	assert.Equal(t, "abcdefg", info.GitCommit)
	assert.Equal(t, "2024-04-27T15:04:05Z", info.BuildTime)
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "1.2.3", GitCommit: "abc", BuildTime: "now", GoVersion: "go1.25", Platform: "linux/amd64"}.String()
	assert.True(t, strings.HasPrefix(s, "dirclip version 1.2.3 (commit: abc)"))
	assert.Contains(t, s, "linux/amd64")
}
