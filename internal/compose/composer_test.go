package compose

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmerge/svcmerge/internal/listing"
)

func memSource(version, content string) listing.Source {
	return listing.Source{
		Version: version,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func twoVersionSources() []listing.Source {
	return []listing.Source{
		memSource("v1", "A\t10\nB\t20\n"),
		memSource("v2", "A\t11\nC\t30\n"),
	}
}

func TestCompose_TwoVersions(t *testing.T) {
	res, err := Compose(twoVersionSources(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"v1", "v2"}, res.Versions)
	require.Equal(t, 3, res.Registry.Len())
	assert.True(t, res.Registry.Frozen())

	entries := res.Registry.Entries()
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, "B", entries[1].Name)
	assert.Equal(t, "C", entries[2].Name)

	v, ok := entries[0].Value("v1")
	require.True(t, ok)
	assert.Equal(t, int64(10), v)
	v, ok = entries[0].Value("v2")
	require.True(t, ok)
	assert.Equal(t, int64(11), v)

	_, ok = entries[1].Value("v2")
	assert.False(t, ok, "B has no v2 value")
	_, ok = entries[2].Value("v1")
	assert.False(t, ok, "C has no v1 value")
}

func TestCompose_FirstSeen(t *testing.T) {
	res, err := Compose(twoVersionSources(), nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"A": "v1",
		"B": "v1",
		"C": "v2",
	}, res.FirstSeen)
}

func TestCompose_Stats(t *testing.T) {
	sources := []listing.Source{
		memSource("v1", "A\t10\nbroken\nB\t20\nX\tnope\n"),
		memSource("v2", "A\t11\n"),
	}

	res, err := Compose(sources, nil)
	require.NoError(t, err)

	require.Len(t, res.Stats.Sources, 2)
	assert.Equal(t, SourceStats{Version: "v1", Applied: 2, Skipped: 2}, res.Stats.Sources[0])
	assert.Equal(t, SourceStats{Version: "v2", Applied: 1, Skipped: 0}, res.Stats.Sources[1])
	assert.Equal(t, 3, res.Stats.TotalApplied())
	assert.Equal(t, 2, res.Stats.TotalSkipped())
}

func TestCompose_LastWriteWinsWithinVersion(t *testing.T) {
	sources := []listing.Source{
		memSource("v1", "dup\t1\ndup\t7\n"),
	}

	res, err := Compose(sources, nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.Registry.Len())

	v, ok := res.Registry.Entries()[0].Value("v1")
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
}

func TestCompose_OpenFailureIsFatal(t *testing.T) {
	boom := errors.New("permission denied")
	sources := []listing.Source{
		memSource("v1", "A\t10\n"),
		{Version: "v2", Open: func() (io.ReadCloser, error) { return nil, boom }},
	}

	res, err := Compose(sources, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "v2")
	assert.Nil(t, res, "no partial result on source failure")
}

type brokenReadCloser struct{ err error }

func (b brokenReadCloser) Read([]byte) (int, error) { return 0, b.err }
func (b brokenReadCloser) Close() error             { return nil }

func TestCompose_ReadFailureIsFatal(t *testing.T) {
	boom := errors.New("io timeout")
	sources := []listing.Source{
		{Version: "v1", Open: func() (io.ReadCloser, error) { return brokenReadCloser{err: boom}, nil }},
	}

	res, err := Compose(sources, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}

func TestCompose_Empty(t *testing.T) {
	res, err := Compose(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Registry.Len())
	assert.Empty(t, res.Versions)
}
