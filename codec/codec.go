/*
Package codec defines the persisted line format for employee records.

PURPOSE:
  One record is one line of minimal-quoted CSV, category tag first, values
  in declaration order:

    Category,name,email,image,<wage>,<variant-field>

  The wage field is the yearly salary for salaried categories and the
  hourly rate for hourly ones. The variant field is the role name for
  Executive, the department name for Manager, the hire date for Permanent,
  and the last day for Temporary. Every category carries exactly six
  fields; the image travels in the base payload with no special casing.

DECODING:
  The tag selects the layout; each positional field is parsed to its
  semantic type and the record is built through the employee constructors,
  so every validation rule applies to loaded data exactly as it does to
  typed-in data. An unknown tag or a wrong field count is a
  MalformedRecordError; a bad field value surfaces the constructor's own
  validation error.

  Role and department fields decode from either the enum name ("CEO") or
  the legacy integer code ("1"). Files written by this codec use names;
  files written by the predecessor system used codes, and both must load.

ROUND-TRIP:
  Decode(Encode(r)) yields a record field-equal to r. Numeric text may be
  reformatted (trailing zeros dropped), but the parsed value is identical.

SEE ALSO:
  - roster: Drives the codec line by line for whole-file load/save
*/
package codec

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/acme-machining/hr-roster/employee"
)

// fieldCount is the fixed per-line layout width shared by every category.
const fieldCount = 6

// =============================================================================
// ERRORS
// =============================================================================

// MalformedRecordError reports a line that cannot map to any record shape.
type MalformedRecordError struct {
	Tag    string
	Fields int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record (tag %q, %d fields): %s", e.Tag, e.Fields, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return employee.ErrMalformedRecord
}

// =============================================================================
// ENCODE
// =============================================================================

// Encode renders one record as one CSV line, without a trailing newline.
// Fields containing commas or quotes are quoted per CSV minimal quoting.
func Encode(rec *employee.Employee) (string, error) {
	fields, err := encodeFields(rec)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(fields); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func encodeFields(rec *employee.Employee) ([]string, error) {
	base := []string{string(rec.Category()), rec.Name(), rec.Email(), rec.Image()}
	switch rec.Category() {
	case employee.CategoryExecutive:
		return append(base, rec.Yearly().String(), rec.Role().Name()), nil
	case employee.CategoryManager:
		return append(base, rec.Yearly().String(), rec.Department().Name()), nil
	case employee.CategoryPermanent:
		return append(base, rec.Hourly().String(), rec.HiredDate()), nil
	case employee.CategoryTemporary:
		return append(base, rec.Hourly().String(), rec.LastDay()), nil
	default:
		return nil, &MalformedRecordError{Tag: string(rec.Category()), Reason: "unknown category"}
	}
}

// =============================================================================
// DECODE
// =============================================================================

// decodeFunc builds one variant from its parsed positional fields.
// Keyed by tag: the closed-set counterpart of a type registry.
type decodeFunc func(seq *employee.Sequence, name, email string, wage employee.Money, variant string) (*employee.Employee, error)

var decoders = map[employee.Category]decodeFunc{
	employee.CategoryExecutive: func(seq *employee.Sequence, name, email string, wage employee.Money, variant string) (*employee.Employee, error) {
		code, err := enumCode(variant, "role", func(s string) (int, bool) {
			r, ok := employee.RoleFromName(s)
			return r.Code(), ok
		})
		if err != nil {
			return nil, err
		}
		return employee.NewExecutive(seq, name, email, wage, code)
	},
	employee.CategoryManager: func(seq *employee.Sequence, name, email string, wage employee.Money, variant string) (*employee.Employee, error) {
		code, err := enumCode(variant, "department", func(s string) (int, bool) {
			d, ok := employee.DepartmentFromName(s)
			return d.Code(), ok
		})
		if err != nil {
			return nil, err
		}
		return employee.NewManager(seq, name, email, wage, code)
	},
	employee.CategoryPermanent: func(seq *employee.Sequence, name, email string, wage employee.Money, variant string) (*employee.Employee, error) {
		return employee.NewPermanent(seq, name, email, wage, variant)
	},
	employee.CategoryTemporary: func(seq *employee.Sequence, name, email string, wage employee.Money, variant string) (*employee.Employee, error) {
		return employee.NewTemporary(seq, name, email, wage, variant)
	},
}

// Decode parses one CSV line into a record, drawing its identity from seq.
// Construction goes through the employee constructors, so all field and
// category validation applies; validation failures propagate unchanged.
func Decode(line string, seq *employee.Sequence) (*employee.Employee, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1 // field count checked against the tag's layout below
	fields, err := r.Read()
	if err != nil {
		return nil, &MalformedRecordError{Fields: 0, Reason: err.Error()}
	}

	tag := ""
	if len(fields) > 0 {
		tag = fields[0]
	}
	decode, ok := decoders[employee.Category(tag)]
	if !ok {
		return nil, &MalformedRecordError{Tag: tag, Fields: len(fields), Reason: "unrecognized category tag"}
	}
	if len(fields) != fieldCount {
		return nil, &MalformedRecordError{
			Tag:    tag,
			Fields: len(fields),
			Reason: fmt.Sprintf("expected %d fields", fieldCount),
		}
	}

	name, email, image := fields[1], fields[2], fields[3]
	// Image is applied after construction via SetImage; check it up front so
	// a bad image field cannot fail a record that already drew an identity.
	if err := employee.ValidateImage(image); err != nil {
		return nil, err
	}
	wage, err := employee.ParseMoney(fields[4])
	if err != nil {
		wageField := "hourly"
		if employee.Category(tag).IsSalaried() {
			wageField = "yearly"
		}
		return nil, &employee.InvalidFieldError{Field: wageField, Value: fields[4], Reason: "not a number"}
	}

	rec, err := decode(seq, name, email, wage, fields[5])
	if err != nil {
		return nil, err
	}
	if err := rec.SetImage(image); err != nil {
		return nil, err
	}
	return rec, nil
}

// enumCode resolves a persisted role/department field: an integer is the
// legacy code, anything else must be an exact enum name.
func enumCode(field, kind string, fromName func(string) (int, bool)) (int, error) {
	if code, err := strconv.Atoi(field); err == nil {
		return code, nil
	}
	if code, ok := fromName(field); ok {
		return code, nil
	}
	return 0, &employee.InvalidCategoryError{Kind: kind, Name: field}
}
