package user

import (
	"regexp"
	"strings"
)

// Validation messages, in the order Validate reports them.
const (
	ErrInvalidName    = "Invalid or missing name"
	ErrInvalidEmail   = "Invalid or missing email"
	ErrInvalidCity    = "Missing or invalid city in address"
	ErrInvalidCompany = "Missing or invalid company name"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Validate returns every problem found in r. A nil result means the record is valid.
func Validate(r Record) []string {
	var errs []string

	if !r.Name.Valid() || digitsOnly.MatchString(strings.TrimSpace(r.Name.String())) {
		errs = append(errs, ErrInvalidName)
	}
	if !r.Email.Valid() || !strings.Contains(r.Email.String(), "@") {
		errs = append(errs, ErrInvalidEmail)
	}
	if !r.Address.City.Valid() {
		errs = append(errs, ErrInvalidCity)
	}
	if !r.Company.Name.Valid() {
		errs = append(errs, ErrInvalidCompany)
	}

	return errs
}

// Validations maps a record index to its problems. Valid records have no entry.
type Validations map[int][]string

// ValidateRange validates records[from:] into v, keyed by absolute index.
func (v Validations) ValidateRange(records []Record, from int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(records); i++ {
		if errs := Validate(records[i]); len(errs) > 0 {
			v[i] = errs
		}
	}
}

// ValidateAll validates every record.
func ValidateAll(records []Record) Validations {
	v := make(Validations)
	v.ValidateRange(records, 0)
	return v
}
