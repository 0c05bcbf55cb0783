package rules

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates the fields of a record.
const Delimiter = "|"

// Kind is the leading field of a record; the installer dispatches on it.
type Kind string

const (
	AllowPort          Kind = "ALLOW_PORT"
	AllowSource        Kind = "ALLOW_SOURCE"
	AllowContainerPort Kind = "ALLOW_CONTAINER_PORT"
	ForwardPort        Kind = "FORWARD_PORT"
)

// Kinds lists record kinds in emission order.
var Kinds = []Kind{AllowPort, AllowSource, AllowContainerPort, ForwardPort}

// Record is one resolved rule, printed as a single line
type Record struct {
	Kind   Kind
	Fields []string
}

func (r Record) String() string {
	return string(r.Kind) + Delimiter + strings.Join(r.Fields, Delimiter)
}

// Write prints one newline-terminated line per record
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintln(bw, r.String()); err != nil {
			return fmt.Errorf("writing %s record: %w", r.Kind, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing records: %w", err)
	}
	return nil
}

// Count tallies records per kind
func Count(records []Record) map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, r := range records {
		counts[r.Kind]++
	}
	return counts
}
