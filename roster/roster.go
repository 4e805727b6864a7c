/*
Package roster holds the ordered in-memory collection of employee records.

PURPOSE:
  The Roster is the single owner of all records for a session. It assigns
  ascending identity numbers through a sequence it owns, offers ordered
  access, and drives the codec for whole-file load and save.

ALL-OR-NOTHING LOAD:
  Load decodes every line into a staging slice against a cloned identity
  sequence. The first bad line aborts the load and leaves the roster -
  records and sequence both - exactly as before. Only when every line
  decoded does the staged state replace the old one. There is no partial
  roster and no identity consumed by a failed load.

SAVE:
  SaveAll writes every record in current roster order and overwrites the
  sink entirely. Ordering is insertion order; the roster never reorders.

OWNERSHIP:
  Single-threaded by contract: one owner, no locking. Collaborators hold
  records only transiently (display/edit), never beyond the roster's life.

SEE ALSO:
  - codec: The per-line encode/decode the roster drives
  - employee: Record construction against Roster.Sequence()
*/
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acme-machining/hr-roster/codec"
	"github.com/acme-machining/hr-roster/employee"
)

// DefaultDataFile is the conventional roster file name.
const DefaultDataFile = "employee.data"

// Roster is the ordered record collection for one session.
type Roster struct {
	seq     *employee.Sequence
	records []*employee.Employee
}

// New returns an empty roster owning a fresh identity sequence.
func New() *Roster {
	return &Roster{seq: employee.NewSequence()}
}

// NewWithSequence returns an empty roster over an injected sequence.
// Tests use this to pin identity numbering.
func NewWithSequence(seq *employee.Sequence) *Roster {
	return &Roster{seq: seq}
}

// Sequence exposes the roster's identity source so collaborators construct
// records against the roster's own counter.
func (r *Roster) Sequence() *employee.Sequence {
	return r.seq
}

// =============================================================================
// ORDERED ACCESS
// =============================================================================

// Append adds a record at the end of the roster.
func (r *Roster) Append(rec *employee.Employee) {
	r.records = append(r.records, rec)
}

// Count returns the number of records.
func (r *Roster) Count() int {
	return len(r.records)
}

// RecordAt returns the record at position i, in insertion order.
func (r *Roster) RecordAt(i int) (*employee.Employee, error) {
	if i < 0 || i >= len(r.records) {
		return nil, &employee.IndexOutOfRangeError{Index: i, Count: len(r.records)}
	}
	return r.records[i], nil
}

// Records returns a copy of the record slice in roster order. The records
// themselves are shared; the slice is the caller's to keep.
func (r *Roster) Records() []*employee.Employee {
	out := make([]*employee.Employee, len(r.records))
	copy(out, r.records)
	return out
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads every line from src, decodes each in file order, and replaces
// the roster's contents. Fail-fast and all-or-nothing: any undecodable line
// aborts the load with the roster untouched. Blank lines are skipped.
func (r *Roster) Load(src io.Reader) error {
	staged := make([]*employee.Employee, 0)
	seq := r.seq.Clone()

	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := codec.Decode(line, seq)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		staged = append(staged, rec)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	r.records = staged
	r.seq.Adopt(seq)
	return nil
}

// SaveAll writes every record to sink, one line each, in roster order.
func (r *Roster) SaveAll(sink io.Writer) error {
	w := bufio.NewWriter(sink)
	for _, rec := range r.records {
		line, err := codec.Encode(rec)
		if err != nil {
			return err
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadFile opens path, loads it, and releases the handle on every exit path.
func (r *Roster) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Load(f)
}

// SaveFile overwrites path with the full roster. No append, no merge.
func (r *Roster) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.SaveAll(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
