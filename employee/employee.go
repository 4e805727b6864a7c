/*
employee.go - Record construction and mutation

PURPOSE:
  Defines the Employee record as one closed tagged variant instead of an
  open class hierarchy. A record is a base payload (id, name, email, image,
  category) plus the payload its category carries: a yearly salary with a
  role or department, or an hourly wage with a hire or last-day date.

CONSTRUCTION CONTRACT:
  Each variant has one constructor taking raw inputs. Validators run in a
  fixed order - name, email, wage, then any enumerated code - and the first
  failure aborts the whole construction. The identity is drawn from the
  sequence only after everything validated, so a rejected construction
  never consumes an ID and never leaves a partial record observable.

MUTATION CONTRACT:
  Setters re-run the field's validator. On failure the previous value is
  untouched and the error is returned. Variant setters on the wrong
  category fail with ErrCategoryMismatch without mutating.

SEE ALSO:
  - validate.go: The validators the contract applies
  - pay.go: CalcPay dispatch over the category tag
*/
package employee

import (
	"fmt"
)

// Employee is one roster record. Zero value is not usable; build records
// through the variant constructors so the validation contract holds.
type Employee struct {
	id       ID
	category Category

	name  string
	email string
	image string

	yearly Money // salaried categories only
	hourly Money // hourly categories only

	role       Role       // Executive only
	department Department // Manager only
	hiredDate  string     // Permanent only, raw date text
	lastDay    string     // Temporary only, raw date text
}

// =============================================================================
// CONSTRUCTORS - One per instantiable category
// =============================================================================

// NewExecutive builds an executive record: a salaried employee holding one
// of the C-suite roles, identified by its integer code.
func NewExecutive(seq *Sequence, name, email string, yearly Money, roleCode int) (*Employee, error) {
	base, err := newSalaried(name, email, yearly)
	if err != nil {
		return nil, err
	}
	role, err := RoleFromCode(roleCode)
	if err != nil {
		return nil, err
	}
	base.category = CategoryExecutive
	base.role = role
	base.id = seq.Next()
	return base, nil
}

// NewManager builds a manager record: a salaried employee heading one of
// the company departments, identified by its integer code.
func NewManager(seq *Sequence, name, email string, yearly Money, departmentCode int) (*Employee, error) {
	base, err := newSalaried(name, email, yearly)
	if err != nil {
		return nil, err
	}
	dept, err := DepartmentFromCode(departmentCode)
	if err != nil {
		return nil, err
	}
	base.category = CategoryManager
	base.department = dept
	base.id = seq.Next()
	return base, nil
}

// NewPermanent builds a permanent hourly record carrying its hire date.
// The date is raw text; it is persisted and displayed, never computed with.
func NewPermanent(seq *Sequence, name, email string, hourly Money, hiredDate string) (*Employee, error) {
	base, err := newHourly(name, email, hourly)
	if err != nil {
		return nil, err
	}
	base.category = CategoryPermanent
	base.hiredDate = hiredDate
	base.id = seq.Next()
	return base, nil
}

// NewTemporary builds a temporary hourly record carrying its last day.
func NewTemporary(seq *Sequence, name, email string, hourly Money, lastDay string) (*Employee, error) {
	base, err := newHourly(name, email, hourly)
	if err != nil {
		return nil, err
	}
	base.category = CategoryTemporary
	base.lastDay = lastDay
	base.id = seq.Next()
	return base, nil
}

// newSalaried validates the shared fields of the salaried categories.
// No identity yet: the caller assigns it once its own checks pass.
func newSalaried(name, email string, yearly Money) (*Employee, error) {
	base, err := newBase(name, email)
	if err != nil {
		return nil, err
	}
	if err := ValidateYearly(yearly); err != nil {
		return nil, err
	}
	base.yearly = yearly
	return base, nil
}

func newHourly(name, email string, hourly Money) (*Employee, error) {
	base, err := newBase(name, email)
	if err != nil {
		return nil, err
	}
	if err := ValidateHourly(hourly); err != nil {
		return nil, err
	}
	base.hourly = hourly
	return base, nil
}

func newBase(name, email string) (*Employee, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	return &Employee{
		name:  name,
		email: email,
		image: ImagePlaceholder,
	}, nil
}

// =============================================================================
// GETTERS
// =============================================================================

func (e *Employee) ID() ID             { return e.id }
func (e *Employee) Category() Category { return e.category }
func (e *Employee) Name() string       { return e.name }
func (e *Employee) Email() string      { return e.email }
func (e *Employee) Image() string      { return e.image }

// Yearly returns the salary for salaried categories; zero otherwise.
func (e *Employee) Yearly() Money { return e.yearly }

// Hourly returns the wage for hourly categories; zero otherwise.
func (e *Employee) Hourly() Money { return e.hourly }

// Role is meaningful only for Executive records.
func (e *Employee) Role() Role { return e.role }

// Department is meaningful only for Manager records.
func (e *Employee) Department() Department { return e.department }

// HiredDate is meaningful only for Permanent records.
func (e *Employee) HiredDate() string { return e.hiredDate }

// LastDay is meaningful only for Temporary records.
func (e *Employee) LastDay() string { return e.lastDay }

// =============================================================================
// SETTERS - Validate, then commit or leave unchanged
// =============================================================================

func (e *Employee) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	e.name = name
	return nil
}

func (e *Employee) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	e.email = email
	return nil
}

func (e *Employee) SetImage(path string) error {
	if err := ValidateImage(path); err != nil {
		return err
	}
	e.image = path
	return nil
}

func (e *Employee) SetYearly(yearly Money) error {
	if !e.category.IsSalaried() {
		return fmt.Errorf("yearly on %s record: %w", e.category, ErrCategoryMismatch)
	}
	if err := ValidateYearly(yearly); err != nil {
		return err
	}
	e.yearly = yearly
	return nil
}

func (e *Employee) SetHourly(hourly Money) error {
	if !e.category.IsHourly() {
		return fmt.Errorf("hourly on %s record: %w", e.category, ErrCategoryMismatch)
	}
	if err := ValidateHourly(hourly); err != nil {
		return err
	}
	e.hourly = hourly
	return nil
}

func (e *Employee) SetRole(code int) error {
	if e.category != CategoryExecutive {
		return fmt.Errorf("role on %s record: %w", e.category, ErrCategoryMismatch)
	}
	role, err := RoleFromCode(code)
	if err != nil {
		return err
	}
	e.role = role
	return nil
}

func (e *Employee) SetDepartment(code int) error {
	if e.category != CategoryManager {
		return fmt.Errorf("department on %s record: %w", e.category, ErrCategoryMismatch)
	}
	dept, err := DepartmentFromCode(code)
	if err != nil {
		return err
	}
	e.department = dept
	return nil
}

func (e *Employee) SetHiredDate(date string) error {
	if e.category != CategoryPermanent {
		return fmt.Errorf("hired date on %s record: %w", e.category, ErrCategoryMismatch)
	}
	e.hiredDate = date
	return nil
}

func (e *Employee) SetLastDay(date string) error {
	if e.category != CategoryTemporary {
		return fmt.Errorf("last day on %s record: %w", e.category, ErrCategoryMismatch)
	}
	e.lastDay = date
	return nil
}

// =============================================================================
// DISPLAY
// =============================================================================

// String renders the record for diagnostics: base fields, wage, then the
// variant field. The persisted format is defined by the codec, not here.
func (e *Employee) String() string {
	switch e.category {
	case CategoryExecutive:
		return fmt.Sprintf("%s, %s, %s, %s, %s", e.name, e.email, e.image, e.yearly, e.role)
	case CategoryManager:
		return fmt.Sprintf("%s, %s, %s, %s, %s", e.name, e.email, e.image, e.yearly, e.department)
	case CategoryPermanent:
		return fmt.Sprintf("%s, %s, %s, %s, %s", e.name, e.email, e.image, e.hourly, e.hiredDate)
	case CategoryTemporary:
		return fmt.Sprintf("%s, %s, %s, %s, %s", e.name, e.email, e.image, e.hourly, e.lastDay)
	default:
		return fmt.Sprintf("%s, %s, %s", e.name, e.email, e.image)
	}
}
