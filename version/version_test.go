package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
}

func TestGetLdflagsWin(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abc1234"
	BuildTime = "2024-01-01T00:00:00Z"

	info := Get()
	if info.Version != "1.2.3" || info.GitCommit != "abc1234" || info.BuildTime != "2024-01-01T00:00:00Z" {
		t.Errorf("ldflags values must win: %+v", info)
	}
}

func TestShort(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abc1234"

	if got := Short(); got != "1.2.3-abc1234" {
		t.Errorf("expected '1.2.3-abc1234', got %q", got)
	}

	GitCommit = ""
	if got := Short(); !strings.HasPrefix(got, "1.2.3") {
		t.Errorf("expected version prefix, got %q", got)
	}
}
