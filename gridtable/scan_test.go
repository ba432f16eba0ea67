package gridtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTableLines(t *testing.T) {
	t.Run("garbage before separator aborts immediately", func(t *testing.T) {
		parts := ScanTableLines([]string{"hi", "+-+--+", "|a|b1|", "+-+--+"})
		assert.Empty(t, parts)
	})

	t.Run("no input", func(t *testing.T) {
		assert.Empty(t, ScanTableLines(nil))
	})

	t.Run("full table", func(t *testing.T) {
		parts := ScanTableLines([]string{"+-+--+", "|a|b1|", "+-+--+"})
		require.Len(t, parts, 3)
		assert.IsType(t, SeparatorLine{}, parts[0])
		assert.IsType(t, ContentLine{}, parts[1])
		assert.IsType(t, SeparatorLine{}, parts[2])
	})

	t.Run("stops at first line matching neither kind", func(t *testing.T) {
		parts := ScanTableLines([]string{"+-+--+", "|a|b1|", "plain text", "+-+--+"})
		assert.Len(t, parts, 2)
	})

	t.Run("separator wins over content interpretation", func(t *testing.T) {
		// A differently shaped separator still scans as a separator even
		// though the run it produces will not validate.
		parts := ScanTableLines([]string{"+-+--+", "+--+-+"})
		require.Len(t, parts, 2)
		sep, ok := parts[1].(SeparatorLine)
		require.True(t, ok)
		assert.Equal(t, []int{2, 1}, sep.ColumnLengths)
	})

	t.Run("content lines follow the first separator's layout", func(t *testing.T) {
		// "|ab|c|" fits the first separator's [2,1] but not [1,2].
		parts := ScanTableLines([]string{"+--+-+", "|ab|c|", "+--+-+"})
		require.Len(t, parts, 3)
		content, ok := parts[1].(ContentLine)
		require.True(t, ok)
		assert.Equal(t, []string{"ab", "c"}, content.DataChunks)
	})
}

func TestFindTables(t *testing.T) {
	t.Run("tables between prose", func(t *testing.T) {
		lines := []string{
			"intro text",
			"+-+--+",
			"|a|b1|",
			"+-+--+",
			"middle",
			"+---+",
			"| x |",
			"+---+",
			"outro",
		}
		regions := FindTables(lines)
		require.Len(t, regions, 2)

		assert.Equal(t, 1, regions[0].Start)
		assert.Equal(t, 4, regions[0].End)
		assert.Equal(t, []int{1, 2}, regions[0].Layout.ColumnLengths)
		assert.Equal(t, "a", regions[0].Table.Rows[0].Cells[0].Content)

		assert.Equal(t, 5, regions[1].Start)
		assert.Equal(t, 8, regions[1].End)
		assert.Equal(t, "x", regions[1].Table.Rows[0].Cells[0].Content)
	})

	t.Run("malformed run does not hide a later table", func(t *testing.T) {
		lines := []string{
			"+-+--+", // no content follows, not a table
			"+---+",
			"| x |",
			"+---+",
		}
		regions := FindTables(lines)
		require.Len(t, regions, 1)
		assert.Equal(t, 1, regions[0].Start)
		assert.Equal(t, 4, regions[0].End)
	})

	t.Run("stray content after closing separator is left alone", func(t *testing.T) {
		lines := []string{
			"+---+",
			"| x |",
			"+---+",
			"| y |",
		}
		regions := FindTables(lines)
		require.Len(t, regions, 1)
		assert.Equal(t, 3, regions[0].End)
	})

	t.Run("no tables", func(t *testing.T) {
		assert.Empty(t, FindTables([]string{"just", "text"}))
	})
}
