package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBuildInfo(t *testing.T) {
	i := Info{Version: "0.0.0", Revision: "unknown", BuiltAt: "unknown"}
	applyBuildInfo(&i, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
		},
	})
	assert.Equal(t, "v1.2.0", i.Version)
	assert.Equal(t, "0123456", i.Revision)
	assert.Equal(t, "2024-01-02T03:04:05Z", i.BuiltAt)
}

func TestApplyBuildInfo_KeepsLinkerValues(t *testing.T) {
	i := Info{Version: "1.0.0", Revision: "abc", BuiltAt: "today"}
	applyBuildInfo(&i, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}},
	})
	assert.Equal(t, "1.0.0", i.Version)
	assert.Equal(t, "abc", i.Revision)
}

func TestInfo_JSON(t *testing.T) {
	s, err := GetVersionInfo().JSON()
	require.NoError(t, err)
	assert.Contains(t, s, `"goVersion"`)
}
