package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// RunID identifies one analysis run (dataset, variable, configuration triple)
	RunID ID
	// VariableKey names an outcome variable within a dataset
	VariableKey ID
	// GroupLabel names a compared group within an outcome variable
	GroupLabel ID
)

func (id RunID) String() string       { return ID(id).String() }
func (id VariableKey) String() string { return ID(id).String() }
func (id GroupLabel) String() string  { return ID(id).String() }

// ParseVariableKey parses a string into VariableKey
func ParseVariableKey(s string) (VariableKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("variable key cannot be empty")
	}
	return VariableKey(s), nil
}

// ParseGroupLabel parses a string into GroupLabel
func ParseGroupLabel(s string) (GroupLabel, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("group label cannot be empty")
	}
	return GroupLabel(s), nil
}
