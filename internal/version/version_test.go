package version

import "testing"

func TestResolveUsesLdflags(t *testing.T) {
	oldVersion, oldCommit, oldBuildTime := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuildTime })

	Version, Commit, BuildTime = "1.2.3", "0123456789abcdef0123", "2026-01-02T03:04:05Z"
	info := Resolve()
	if info.Version != "1.2.3" || info.Commit != Commit || info.BuildTime != BuildTime {
		t.Fatalf("Resolve() = %+v", info)
	}

	if got, want := String(), "1.2.3 (0123456789ab)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	oldVersion := Version
	t.Cleanup(func() { Version = oldVersion })

	Version = ""
	if info := Resolve(); info.Version == "" {
		t.Fatal("Resolve() returned an empty version")
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("abc"); got != "abc" {
		t.Fatalf("shortCommit(abc) = %q", got)
	}
	if got := shortCommit("0123456789abcdef"); got != "0123456789ab" {
		t.Fatalf("shortCommit = %q", got)
	}
}
