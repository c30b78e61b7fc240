package vet

type allOfConstraint struct {
	constraints []Constraint
}

// AllOf composes constraints with strict left-to-right, fail-fast
// evaluation. The first failing constraint stops the walk and its failure
// propagates as the overall failure; constraints after it are never invoked.
//
// The constraint list is copied at construction and its order is fixed.
func AllOf(constraints ...Constraint) Constraint {
	list := make([]Constraint, len(constraints))
	copy(list, constraints)
	return allOfConstraint{constraints: list}
}

// Kind implements Constraint.
func (allOfConstraint) Kind() Kind { return KindAllOf }

// Check implements Constraint.
func (c allOfConstraint) Check(inst Instance, param Parameter, value any) error {
	for _, sub := range c.constraints {
		if err := sub.Check(inst, param, value); err != nil {
			return err
		}
	}
	return nil
}
