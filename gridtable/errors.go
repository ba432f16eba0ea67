// Package gridtable implements the grid-table plaintext format: multiline
// tables delimited by `+---+` separator lines and `| cell |` content lines.
// It provides a lossless line-by-line parser, a structural validator, a
// canonicalizing serializer, and detection of tables embedded in larger
// documents. All operations are pure functions over in-memory line
// sequences; instances are safe for concurrent use.
package gridtable

import "errors"

var (
	// ErrFormatMismatch indicates that a line does not conform to the
	// separator or content line grammar. The scanner treats it as "stop
	// here"; it never propagates past the scanner.
	ErrFormatMismatch = errors.New("line does not match grid table format")
	// ErrInvalidArgument indicates a construction precondition was violated
	// by the caller, such as an empty column-length list.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTableFormatInvalid indicates that a scanned line sequence is not a
	// structurally well-formed table.
	ErrTableFormatInvalid = errors.New("table format invalid")
)
