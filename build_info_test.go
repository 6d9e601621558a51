package oas2

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionDefaultsToDev(t *testing.T) {
	assert.Equal(t, "dev", Version())
}

func TestCommitAndBuildTimeDefaultToUnknown(t *testing.T) {
	assert.Equal(t, "unknown", Commit())
	assert.Equal(t, "unknown", BuildTime())
}

func TestGoVersionMatchesRuntime(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestBuildInfoContainsAllFields(t *testing.T) {
	info := BuildInfo()
	for _, want := range []string{"Version:", "Commit:", "Build Time:", "Go Version:", Version(), GoVersion()} {
		assert.True(t, strings.Contains(info, want), "BuildInfo() missing %q: %s", want, info)
	}
}
