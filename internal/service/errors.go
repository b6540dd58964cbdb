package service

import "strings"

// ValidationError reports field-level problems with a create request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func validatePerson(firstName, lastName string, age int, email string) error {
	var fields []string
	if firstName == "" {
		fields = append(fields, "firstName is required")
	}
	if lastName == "" {
		fields = append(fields, "lastName is required")
	}
	if age < 0 {
		fields = append(fields, "age must be non-negative")
	}
	if email == "" {
		fields = append(fields, "email is required")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
