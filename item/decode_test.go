package item_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/knapsack/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecode_JSON reads a small JSON menu.
func TestDecode_JSON(t *testing.T) {
	in := `[{"name":"A","calories":100,"value":5},{"name":"B","calories":200,"value":6}]`

	items, err := item.Decode(strings.NewReader(in), item.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{
		{Name: "A", Calories: 100, Value: 5},
		{Name: "B", Calories: 200, Value: 6},
	}, items)
}

// TestDecode_YAML reads the same menu as YAML, zero-calorie entry included.
func TestDecode_YAML(t *testing.T) {
	in := `
- name: A
  calories: 100
  value: 5
- name: water
  calories: 0
  value: 1
`
	items, err := item.Decode(strings.NewReader(in), item.FormatYAML)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "water", items[1].Name)
	assert.Zero(t, items[1].Calories)
}

// TestDecode_Empty: an empty YAML document is an empty, non-nil menu.
func TestDecode_Empty(t *testing.T) {
	items, err := item.Decode(strings.NewReader(""), item.FormatYAML)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// TestDecode_Invalid covers validation failures, bad syntax and unknown formats.
func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format item.Format
		target error
	}{
		{"empty name", `[{"name":"","calories":1,"value":1}]`, item.FormatJSON, item.ErrInvalidItem},
		{"negative calories", `[{"name":"x","calories":-5,"value":1}]`, item.FormatJSON, item.ErrInvalidItem},
		{"negative value", "- name: x\n  calories: 5\n  value: -1\n", item.FormatYAML, item.ErrInvalidItem},
		{"unknown format", `[]`, item.Format("xml"), item.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := item.Decode(strings.NewReader(tt.in), tt.format)
			require.ErrorIs(t, err, tt.target)
		})
	}

	_, err := item.Decode(strings.NewReader(`{not json`), item.FormatJSON)
	require.Error(t, err, "malformed JSON must fail")
}

// TestFormatFromPath checks extension sniffing.
func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, item.FormatJSON, item.FormatFromPath("menu.JSON"))
	assert.Equal(t, item.FormatYAML, item.FormatFromPath("menu.yaml"))
	assert.Equal(t, item.FormatYAML, item.FormatFromPath("menu.yml"))
	assert.Equal(t, item.FormatYAML, item.FormatFromPath("menu"))
}
