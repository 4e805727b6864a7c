/*
Package employee provides the core employee record model.

PURPOSE:
  This package contains the data model for a company roster: a closed set
  of employee categories, the validation rules each category carries, an
  identity sequence, and the weekly pay calculation. Persistence and
  presentation live elsewhere; this package only knows how to build,
  validate, mutate, and price a single record.

KEY CONCEPTS IN THIS FILE (types.go):
  - Category: the closed tag set of instantiable record shapes
  - Role/Department: integer-coded enums for Executive/Manager records
  - ID/Sequence: monotonically ascending record identity

DESIGN PRINCIPLES:
  1. Closed variants: dispatch is a switch over Category, exhaustive by
     construction - there is no open hierarchy to extend
  2. Precision: wages and pay use decimal.Decimal, never float64
  3. Checked mutation: every setter re-runs the field's validator and
     returns the failure instead of committing a bad value
  4. Deterministic identity: a failed construction consumes no ID

USAGE:
  seq := employee.NewSequence()
  exec, err := employee.NewExecutive(seq, "Jo Doe", "jo@acme-machining.com", 120000, 1)
  if err != nil { ... }
  weekly := exec.CalcPay()

SEE ALSO:
  - employee.go: Record construction and mutation
  - validate.go: Field validators
  - pay.go: Weekly pay calculation
  - errors.go: Error taxonomy
*/
package employee

// =============================================================================
// CATEGORY - Closed set of instantiable record shapes
// =============================================================================

// Category tags a record with its concrete shape. Only the four leaf
// categories exist; "salaried" and "hourly" are structural groupings
// expressed by IsSalaried/IsHourly, never instantiated themselves.
type Category string

const (
	CategoryExecutive Category = "Executive"
	CategoryManager   Category = "Manager"
	CategoryPermanent Category = "Permanent"
	CategoryTemporary Category = "Temporary"
)

// Categories returns the closed tag set in declaration order.
func Categories() []Category {
	return []Category{CategoryExecutive, CategoryManager, CategoryPermanent, CategoryTemporary}
}

// IsSalaried reports whether the category carries a yearly salary.
func (c Category) IsSalaried() bool {
	return c == CategoryExecutive || c == CategoryManager
}

// IsHourly reports whether the category carries an hourly wage.
func (c Category) IsHourly() bool {
	return c == CategoryPermanent || c == CategoryTemporary
}

// Valid reports whether c is one of the four leaf categories.
func (c Category) Valid() bool {
	return c.IsSalaried() || c.IsHourly()
}

// =============================================================================
// ROLE - Executive positions
// =============================================================================

type Role int

const (
	RoleCEO Role = 1
	RoleCFO Role = 2
	RoleCOO Role = 3
)

var roleNames = map[Role]string{
	RoleCEO: "CEO",
	RoleCFO: "CFO",
	RoleCOO: "COO",
}

// RoleFromCode maps a raw integer code to a Role.
// Returns InvalidCategoryError for codes outside the enumerated set.
func RoleFromCode(code int) (Role, error) {
	r := Role(code)
	if _, ok := roleNames[r]; !ok {
		return 0, &InvalidCategoryError{Kind: "role", Code: code}
	}
	return r, nil
}

// RoleFromName maps an exact role name (e.g. "CEO") to a Role.
func RoleFromName(name string) (Role, bool) {
	for r, n := range roleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

func (r Role) Code() int { return int(r) }

func (r Role) Name() string { return roleNames[r] }

func (r Role) String() string { return r.Name() }

// =============================================================================
// DEPARTMENT - Manager assignments
// =============================================================================

type Department int

const (
	DeptAccounting Department = 1
	DeptFinance    Department = 2
	DeptHR         Department = 3
	DeptRAndD      Department = 4
	DeptMachining  Department = 5
)

var departmentNames = map[Department]string{
	DeptAccounting: "ACCOUNTING",
	DeptFinance:    "FINANCE",
	DeptHR:         "HR",
	DeptRAndD:      "R_AND_D",
	DeptMachining:  "MACHINING",
}

// DepartmentFromCode maps a raw integer code to a Department.
// Returns InvalidCategoryError for codes outside the enumerated set.
func DepartmentFromCode(code int) (Department, error) {
	d := Department(code)
	if _, ok := departmentNames[d]; !ok {
		return 0, &InvalidCategoryError{Kind: "department", Code: code}
	}
	return d, nil
}

// DepartmentFromName maps an exact department name (e.g. "MACHINING") to a Department.
func DepartmentFromName(name string) (Department, bool) {
	for d, n := range departmentNames {
		if n == name {
			return d, true
		}
	}
	return 0, false
}

func (d Department) Code() int { return int(d) }

func (d Department) Name() string { return departmentNames[d] }

func (d Department) String() string { return d.Name() }

// =============================================================================
// IDENTITY - Roster-owned ascending sequence
// =============================================================================

// ID is a record's identity number: unique within its sequence, ascending,
// assigned once at construction and never mutated or reused.
type ID int

// Sequence hands out identity numbers. Each Roster owns one; tests may
// construct isolated sequences. Constructors call Next only after every
// field validated, so a rejected construction never consumes a value.
//
// Single-owner by contract: no locking, matching the single-threaded
// resource model of the roster itself.
type Sequence struct {
	next int
}

// NewSequence returns a sequence starting at 0.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the current identity value and advances the sequence.
func (s *Sequence) Next() ID {
	id := ID(s.next)
	s.next++
	return id
}

// Peek returns the value Next would hand out, without consuming it.
func (s *Sequence) Peek() ID {
	return ID(s.next)
}

// Clone returns an independent sequence continuing from the same point.
// Roster.Load decodes against a clone and adopts it only on full success.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{next: s.next}
}

// Adopt advances s to wherever other has reached.
func (s *Sequence) Adopt(other *Sequence) {
	s.next = other.next
}
