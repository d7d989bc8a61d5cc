package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_TwoVersionScenario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, scenarioInput(t)))

	want := "|#|ServiceName|v1|v2|\n" +
		"|---|---|---|---|\n" +
		"|1|A|10|11|\n" +
		"|2|B|20||\n" +
		"|3|C||30|\n"
	assert.Equal(t, want, buf.String())
}

func TestMarkdown_EmptyRegistry(t *testing.T) {
	in := composeInput(t, "", []string{"v1"}, []string{""})

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, in))
	assert.Equal(t, "|#|ServiceName|v1|\n|---|---|---|\n", buf.String())
}

func TestMarkdown_NegativeValues(t *testing.T) {
	in := composeInput(t, "", []string{"v1"}, []string{"svc\t-42\n"})

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, in))
	assert.Contains(t, buf.String(), "|1|svc|-42|\n")
}
