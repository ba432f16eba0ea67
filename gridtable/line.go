package gridtable

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one recognized physical line of a grid table: either a
// SeparatorLine or a ContentLine. Consumers branch with a type switch over
// the two variants.
type Line interface {
	isLine()
}

func (SeparatorLine) isLine() {}
func (ContentLine) isLine()   {}

// Hint is an optional visual width for one column. The zero value means the
// column carries no hint; a hint of width 0 is distinct from no hint.
type Hint struct {
	Width int
	OK    bool
}

// HintOf returns a present hint with the given width.
func HintOf(width int) Hint {
	return Hint{Width: width, OK: true}
}

// VisualWidths is the visual-width annotation of a separator line: either
// absent entirely (legacy line, no hints anywhere) or one Hint slot per
// column. The distinction survives re-serialization: an absent VisualWidths
// never emits digits, while a per-column one emits digits exactly where
// hints are present.
type VisualWidths struct {
	hints []Hint
}

// PerColumn returns a VisualWidths carrying the given per-column hints.
func PerColumn(hints []Hint) VisualWidths {
	if hints == nil {
		hints = []Hint{}
	}
	return VisualWidths{hints: hints}
}

// Absent reports whether no column carries a hint slot at all.
func (v VisualWidths) Absent() bool {
	return v.hints == nil
}

// Len returns the number of hint slots, 0 when absent.
func (v VisualWidths) Len() int {
	return len(v.hints)
}

// At returns the hint slot for column i. Out-of-range or absent yields the
// no-hint zero value.
func (v VisualWidths) At(i int) Hint {
	if i < 0 || i >= len(v.hints) {
		return Hint{}
	}
	return v.hints[i]
}

// SeparatorLine is the parsed form of a `+---+---+` boundary line. It is a
// transient parse/serialize artifact, never retained across calls.
type SeparatorLine struct {
	// ColumnLengths holds the dash count of each column segment. Always
	// non-empty with strictly positive entries.
	ColumnLengths []int
	// VisualWidths carries the optional per-column visual width hints.
	VisualWidths VisualWidths
}

// NewSeparatorLine builds a separator from explicit column lengths and
// optional hints. It fails with ErrInvalidArgument on an empty length list,
// a non-positive length, or a hint list whose arity does not match.
func NewSeparatorLine(lengths []int, hints VisualWidths) (SeparatorLine, error) {
	if len(lengths) == 0 {
		return SeparatorLine{}, fmt.Errorf("%w: separator line needs at least one column", ErrInvalidArgument)
	}
	for i, length := range lengths {
		if length <= 0 {
			return SeparatorLine{}, fmt.Errorf("%w: column %d has non-positive length %d", ErrInvalidArgument, i, length)
		}
	}
	if !hints.Absent() && hints.Len() != len(lengths) {
		return SeparatorLine{}, fmt.Errorf("%w: %d visual width hints for %d columns", ErrInvalidArgument, hints.Len(), len(lengths))
	}
	return SeparatorLine{ColumnLengths: lengths, VisualWidths: hints}, nil
}

// Equal reports whether two separators describe the same column layout.
// Visual width hints are presentation metadata and do not participate.
func (s SeparatorLine) Equal(other SeparatorLine) bool {
	if len(s.ColumnLengths) != len(other.ColumnLengths) {
		return false
	}
	for i := range s.ColumnLengths {
		if s.ColumnLengths[i] != other.ColumnLengths[i] {
			return false
		}
	}
	return true
}

// String renders the canonical text of the separator, e.g. `+--+---+`, or
// `+--10+---+` when column 0 carries a visual width hint of 10.
func (s SeparatorLine) String() string {
	var sb strings.Builder
	sb.WriteByte('+')
	for i, length := range s.ColumnLengths {
		sb.WriteString(strings.Repeat("-", length))
		if hint := s.VisualWidths.At(i); hint.OK {
			sb.WriteString(strconv.Itoa(hint.Width))
		}
		sb.WriteByte('+')
	}
	return sb.String()
}

// ParseSeparatorLine recognizes a separator line. The line must start and
// end with '+'; between delimiters each column is one-or-more dashes,
// optionally suffixed with a decimal visual-width hint, terminated by '+'.
// Any deviation fails with ErrFormatMismatch.
func ParseSeparatorLine(line string) (SeparatorLine, error) {
	if len(line) < 3 || line[0] != '+' {
		return SeparatorLine{}, fmt.Errorf("%w: separator line must start with '+'", ErrFormatMismatch)
	}

	var lengths []int
	var hints []Hint
	anyHint := false

	pos := 1
	for pos < len(line) {
		dashes := 0
		for pos < len(line) && line[pos] == '-' {
			dashes++
			pos++
		}
		if dashes == 0 {
			return SeparatorLine{}, fmt.Errorf("%w: column %d has no dashes at offset %d", ErrFormatMismatch, len(lengths), pos)
		}

		digitStart := pos
		for pos < len(line) && line[pos] >= '0' && line[pos] <= '9' {
			pos++
		}
		hint := Hint{}
		if pos > digitStart {
			width, err := strconv.Atoi(line[digitStart:pos])
			if err != nil {
				return SeparatorLine{}, fmt.Errorf("%w: bad visual width %q: %v", ErrFormatMismatch, line[digitStart:pos], err)
			}
			hint = HintOf(width)
			anyHint = true
		}

		if pos >= len(line) || line[pos] != '+' {
			return SeparatorLine{}, fmt.Errorf("%w: column %d not terminated by '+' at offset %d", ErrFormatMismatch, len(lengths), pos)
		}
		pos++

		lengths = append(lengths, dashes)
		hints = append(hints, hint)
	}

	// The loop only exits at end of line right after a '+', so there are no
	// trailing characters to reject here; an interior stray character fails
	// the dash or '+' checks above.
	widths := VisualWidths{}
	if anyHint {
		widths = PerColumn(hints)
	}
	return NewSeparatorLine(lengths, widths)
}

// ContentLine is the parsed form of a `| x | y |` line: one raw chunk per
// column, as sliced by the governing separator's column lengths. Chunks are
// unpadded by exactly one space on each side, nothing more.
type ContentLine struct {
	DataChunks []string
}

// laxChunkBoundary names a quirk preserved from the original format: a
// fixed-width slice whose final byte is not '|' is skipped without error
// instead of failing the whole line. Misaligned content therefore parses
// with fewer chunks than the separator has columns.
const laxChunkBoundary = true

// ParseContentLine slices line into fixed-width chunks according to the
// governing separator: for each column of length L it consumes L content
// bytes plus the trailing '|'. It fails with ErrFormatMismatch when the line
// does not start with '|', when input runs out mid-column, or when
// characters remain after the last column.
func ParseContentLine(line string, governing SeparatorLine) (ContentLine, error) {
	if len(line) == 0 || line[0] != '|' {
		return ContentLine{}, fmt.Errorf("%w: content line must start with '|'", ErrFormatMismatch)
	}

	var chunks []string
	pos := 1
	for i, length := range governing.ColumnLengths {
		if pos+length+1 > len(line) {
			return ContentLine{}, fmt.Errorf("%w: line too short for column %d (width %d)", ErrFormatMismatch, i, length)
		}
		slice := line[pos : pos+length+1]
		pos += length + 1

		if slice[length] != '|' {
			if !laxChunkBoundary {
				return ContentLine{}, fmt.Errorf("%w: column %d not terminated by '|'", ErrFormatMismatch, i)
			}
			continue
		}
		chunks = append(chunks, unpadChunk(slice[:length]))
	}
	if pos != len(line) {
		return ContentLine{}, fmt.Errorf("%w: %d leftover characters after last column", ErrFormatMismatch, len(line)-pos)
	}
	return ContentLine{DataChunks: chunks}, nil
}

// unpadChunk strips at most one leading and one trailing space. Interior and
// surplus whitespace is content and stays put.
func unpadChunk(chunk string) string {
	chunk = strings.TrimPrefix(chunk, " ")
	return strings.TrimSuffix(chunk, " ")
}
