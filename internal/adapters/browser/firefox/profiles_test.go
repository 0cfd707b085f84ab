package firefox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfilesINI(t *testing.T, root string, lines ...string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(root, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "profiles.ini"), []byte(strings.Join(lines, "\n")+"\n"), 0o600))
}

func TestResolveCookieDBPrefersDefaultProfile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	newCookieDB(t, filepath.Join(root, "aaa.first"))
	want := newCookieDB(t, filepath.Join(root, "bbb.default-release"))
	writeProfilesINI(t, root,
		"[General]",
		"StartWithLastProfile=1",
		"",
		"[Profile0]",
		"Name=first",
		"IsRelative=1",
		"Path=aaa.first",
		"",
		"[Profile1]",
		"Name=default-release",
		"IsRelative=1",
		"Path=bbb.default-release",
		"Default=1",
	)

	got, err := ResolveCookieDB("", []string{root})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveCookieDBFallsBackToFirstProfileWithJar(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o700))
	want := newCookieDB(t, filepath.Join(root, "work"))
	writeProfilesINI(t, root,
		"[Profile0]",
		"Name=empty",
		"Path=empty",
		"Default=1",
		"",
		"[Profile1]",
		"Name=work",
		"Path=work",
	)

	got, err := ResolveCookieDB("", []string{root})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveCookieDBOverride(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	newCookieDB(t, filepath.Join(root, "a1.default"))
	work := newCookieDB(t, filepath.Join(root, "b2.work"))
	absDir := t.TempDir()
	absolute := newCookieDB(t, absDir)
	writeProfilesINI(t, root,
		"[Profile0]",
		"Name=default",
		"Path=a1.default",
		"Default=1",
		"",
		"[Profile1]",
		"Name=work",
		"Path=b2.work",
		"",
		"[Profile2]",
		"Name=elsewhere",
		"IsRelative=0",
		"Path="+absDir,
	)

	testCases := []struct {
		name     string
		override string
		want     string
	}{
		{name: "profile name", override: "work", want: work},
		{name: "directory basename", override: "b2.work", want: work},
		{name: "absolute profile", override: "elsewhere", want: absolute},
		{name: "profile directory", override: absDir, want: absolute},
		{name: "cookie file", override: absolute, want: absolute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveCookieDB(tc.override, []string{root})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveCookieDBNotFound(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProfilesINI(t, root, "[Profile0]", "Name=default", "Path=missing")

	_, err := ResolveCookieDB("", []string{root})
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = ResolveCookieDB("nobody", []string{root, filepath.Join(root, "absent")})
	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorContains(t, err, "nobody")
}
