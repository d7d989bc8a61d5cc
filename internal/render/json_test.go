package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_TwoVersionScenario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, scenarioInput(t)))

	var doc struct {
		Versions []string `json:"versions"`
		Services []struct {
			Name   string   `json:"name"`
			Values []*int64 `json:"values"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, []string{"v1", "v2"}, doc.Versions)
	require.Len(t, doc.Services, 3)

	a := doc.Services[0]
	assert.Equal(t, "A", a.Name)
	require.Len(t, a.Values, 2)
	require.NotNil(t, a.Values[0])
	require.NotNil(t, a.Values[1])
	assert.Equal(t, int64(10), *a.Values[0])
	assert.Equal(t, int64(11), *a.Values[1])

	b := doc.Services[1]
	assert.Equal(t, "B", b.Name)
	require.NotNil(t, b.Values[0])
	assert.Nil(t, b.Values[1], "absent version must be null, not zero")

	c := doc.Services[2]
	assert.Equal(t, "C", c.Name)
	assert.Nil(t, c.Values[0])
}

func TestJSON_AbsentIsNullNeverZero(t *testing.T) {
	in := composeInput(t, "", []string{"v1", "v2"}, []string{"only\t5\n", ""})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, in))

	assert.Contains(t, buf.String(), "null")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestJSON_ValuesAlignWithVersionList(t *testing.T) {
	in := composeInput(t, "",
		[]string{"build-1", "build-2", "build-3"},
		[]string{"", "svc\t7\n", ""})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, in))

	var doc struct {
		Versions []string `json:"versions"`
		Services []struct {
			Name   string   `json:"name"`
			Values []*int64 `json:"values"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Services, 1)
	require.Len(t, doc.Services[0].Values, 3)
	assert.Nil(t, doc.Services[0].Values[0])
	require.NotNil(t, doc.Services[0].Values[1])
	assert.Equal(t, int64(7), *doc.Services[0].Values[1])
	assert.Nil(t, doc.Services[0].Values[2])
}
