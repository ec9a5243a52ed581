package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func linkBuild(t *testing.T, v, c, d string) {
	t.Helper()

	saved := [3]string{version, commit, date}
	t.Cleanup(func() { version, commit, date = saved[0], saved[1], saved[2] })
	version, commit, date = v, c, d
}

func TestVersionReportsLinkedBuild(t *testing.T) {
	linkBuild(t, "0.4.0", "9f3c2e1", "2026-10-14")

	out, _, err := execute(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, []string{
		"Spark 0.4.0",
		"commit: 9f3c2e1",
		"built: 2026-10-14",
		"themes: dark, light",
		"families: button, checkbox, chip, progressbar, rating, slider, tag",
	}, lines)
}

func TestVersionDefaultsWithoutLinkFlags(t *testing.T) {
	linkBuild(t, "dev", "none", "unknown")

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Spark dev\ncommit: none\n"), out)
}

func TestVersionJSON(t *testing.T) {
	linkBuild(t, "0.4.0", "9f3c2e1", "2026-10-14")

	out, _, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info buildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, "0.4.0", info.Version)
	require.Equal(t, "9f3c2e1", info.Commit)
	require.Equal(t, []string{"dark", "light"}, info.Themes)
	require.Contains(t, info.Families, "rating")
	require.Len(t, info.Families, 7)
}

func TestVersionRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "version", "extra")
	require.Error(t, err)
}
