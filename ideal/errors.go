package ideal

import "fmt"

// DomainError reports an input that violates the mathematical precondition
// of a formula.
type DomainError struct {
	Quantity string
	Reason   string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s, got %g", e.Quantity, e.Reason, e.Value)
}
