package gridtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(rows ...[]string) Table {
	var table Table
	for _, cells := range rows {
		row := Row{}
		for _, content := range cells {
			row.Cells = append(row.Cells, Cell{Content: content})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func TestSerialize(t *testing.T) {
	t.Run("content-derived widths", func(t *testing.T) {
		got := Serialize(tableOf([]string{"ab\ncd", "x"}), SerializeOptions{})
		want := strings.Join([]string{
			"+----+---+",
			"| ab | x |",
			"| cd |   |",
			"+----+---+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("base widths are honored when wider", func(t *testing.T) {
		got := Serialize(tableOf([]string{"ab\ncd", "x"}), SerializeOptions{BaseWidths: []int{4, 8}})
		want := strings.Join([]string{
			"+----+--------+",
			"| ab | x      |",
			"| cd |        |",
			"+----+--------+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("base widths never shrink below content", func(t *testing.T) {
		got := Serialize(tableOf([]string{"hello"}), SerializeOptions{BaseWidths: []int{2}})
		want := strings.Join([]string{
			"+-------+",
			"| hello |",
			"+-------+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("empty column renders single-dash separator", func(t *testing.T) {
		got := Serialize(tableOf([]string{""}), SerializeOptions{})
		want := strings.Join([]string{
			"+-+",
			"| |",
			"+-+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("multiple rows repeat the separator", func(t *testing.T) {
		got := Serialize(tableOf([]string{"a"}, []string{"b"}), SerializeOptions{})
		want := strings.Join([]string{
			"+---+",
			"| a |",
			"+---+",
			"| b |",
			"+---+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("visual hints on every separator", func(t *testing.T) {
		hints := PerColumn([]Hint{HintOf(12), {}})
		got := Serialize(tableOf([]string{"a", "b"}, []string{"c", "d"}), SerializeOptions{VisualWidths: hints})
		want := strings.Join([]string{
			"+---12+---+",
			"| a | b |",
			"+---12+---+",
			"| c | d |",
			"+---12+---+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("mismatched hint arity is ignored", func(t *testing.T) {
		hints := PerColumn([]Hint{HintOf(12)})
		got := Serialize(tableOf([]string{"a", "b"}), SerializeOptions{VisualWidths: hints})
		want := strings.Join([]string{
			"+---+---+",
			"| a | b |",
			"+---+---+",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("empty table", func(t *testing.T) {
		assert.Equal(t, "", Serialize(Table{}, SerializeOptions{}))
	})
}

func TestSerializeWidthFloor(t *testing.T) {
	// Regardless of how small BaseWidths requests, each column stays at
	// least as wide as its longest content line plus two padding bytes.
	table := tableOf([]string{"wide content", "x"}, []string{"a", "multi\nline value"})
	for _, base := range [][]int{nil, {1, 1}, {0, 0}, {3}, {40, 2}} {
		out := Serialize(table, SerializeOptions{BaseWidths: base})
		sep, err := ParseSeparatorLine(strings.Split(out, "\n")[0])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sep.ColumnLengths[0], len("wide content")+2, "base %v", base)
		assert.GreaterOrEqual(t, sep.ColumnLengths[1], len("line value")+2, "base %v", base)
	}
}
