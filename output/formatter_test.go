package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/quotekit/quotable"
)

var sample = quotable.Quote{
	ID:      "58f4c5e9a173ab7e005c3a0c",
	Content: "Imagination is more important than knowledge.",
	Author:  "Albert Einstein",
	Length:  46,
	Tags:    []string{"famous-quotes", "wisdom"},
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"", "table", "WIDE", "json", "yaml"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, &sample))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample.ID, decoded["_id"])
	assert.Equal(t, sample.Author, decoded["author"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, []quotable.Quote{sample}))

	out := buf.String()
	assert.Contains(t, out, "id: 58f4c5e9a173ab7e005c3a0c")
	assert.Contains(t, out, "author: Albert Einstein")
	assert.Contains(t, out, "- famous-quotes")
}

func TestTableFormatter(t *testing.T) {
	t.Run("single quote", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, &sample))

		out := buf.String()
		assert.Contains(t, strings.ToUpper(out), "AUTHOR")
		assert.Contains(t, out, "Albert Einstein")
		assert.Contains(t, out, "famous-quotes, wisdom")
	})

	t.Run("page footer", func(t *testing.T) {
		var buf bytes.Buffer
		page := &quotable.Quotes{Page: 2, TotalPages: 9, TotalCount: 42, Results: []quotable.Quote{sample}}
		require.NoError(t, NewFormatter(FormatWide).Format(&buf, page))
		assert.Contains(t, buf.String(), "Page 2 of 9 (42 total)")
	})

	t.Run("unknown data falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"n": 1}))
		assert.JSONEq(t, `{"n":1}`, buf.String())
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
