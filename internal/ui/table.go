package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns under a header line.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return &Table{w: tw}
}

// Row appends a row of values. The number of values should match the number of headers.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// KV renders aligned key/value pairs, one pair per line, without a header.
type KV struct {
	w *tabwriter.Writer
}

// NewKV creates a key/value writer aligned the same way tables are.
func NewKV(out io.Writer) *KV {
	return &KV{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
}

// Pair appends one key/value line.
func (k *KV) Pair(key string, value any) {
	_, _ = fmt.Fprintf(k.w, "%s\t%v\n", key, value)
}

// Flush writes the buffered output.
func (k *KV) Flush() error {
	return k.w.Flush()
}
