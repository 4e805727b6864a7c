/*
validate.go - Field validators for employee records

PURPOSE:
  Pure predicate functions applied at every assignment, not just at
  construction. Constructors run them in a fixed order; setters re-run the
  matching one before committing a new value. Each is total over its input
  domain: no I/O, no allocation of resources, no panics.

RULES (fixed by company policy, mirrored in the persisted data):
  name   - non-empty
  email  - non-empty and contains the company domain, exact and case-sensitive
  image  - non-empty path
  yearly - at least $50,000, no upper bound
  hourly - between $15 and $99.99 inclusive

SEE ALSO:
  - types.go: RoleFromCode / DepartmentFromCode, the enum-membership checks
  - employee.go: Call sites in constructors and setters
*/
package employee

import "strings"

// EmailDomain is the required company address suffix. Matching is an exact,
// case-sensitive substring test anywhere in the address.
const EmailDomain = "@acme-machining.com"

// ImagePlaceholder is the image path every new record starts with.
const ImagePlaceholder = "./images/placeholder.png"

// Wage bounds. Declared as Money so boundary comparisons are exact.
var (
	minYearly = NewMoneyFromInt(50000)
	minHourly = NewMoneyFromInt(15)
	maxHourly = NewMoney(99.99)
)

// ValidateName rejects blank names.
func ValidateName(name string) error {
	if name == "" {
		return &InvalidFieldError{Field: "name", Value: name, Reason: "cannot be blank"}
	}
	return nil
}

// ValidateEmail rejects blank addresses and addresses outside the company domain.
func ValidateEmail(email string) error {
	if email == "" {
		return &InvalidFieldError{Field: "email", Value: email, Reason: "cannot be blank"}
	}
	if !strings.Contains(email, EmailDomain) {
		return &InvalidFieldError{Field: "email", Value: email, Reason: "must be from " + EmailDomain}
	}
	return nil
}

// ValidateImage rejects blank image paths.
func ValidateImage(path string) error {
	if path == "" {
		return &InvalidFieldError{Field: "image", Value: path, Reason: "cannot be empty"}
	}
	return nil
}

// ValidateYearly rejects salaries under $50,000.
func ValidateYearly(amount Money) error {
	if amount.LessThan(minYearly) {
		return &InvalidFieldError{Field: "yearly", Value: amount.String(), Reason: "yearly salary must be at least $50,000"}
	}
	return nil
}

// ValidateHourly rejects wages outside [$15, $99.99].
func ValidateHourly(rate Money) error {
	if rate.LessThan(minHourly) || rate.GreaterThan(maxHourly) {
		return &InvalidFieldError{Field: "hourly", Value: rate.String(), Reason: "hourly wage must be between $15 and $99.99 (inclusive)"}
	}
	return nil
}
