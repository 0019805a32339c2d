package envx

// Variable is a named value obtained from a Source together with the checks to run on it.
type Variable struct {
	Name  string
	Val   string
	Exist bool

	runners []Runner
}

// Runner inspects a variable. A non-nil error stops the chain.
type Runner func(v *Variable) error

func (v *Variable) Required() *Variable {
	v.runners = append(v.runners, Required)
	return v
}

// String runs the registered runners in order and returns the resulting value.
func (v *Variable) String() (string, error) {
	for _, r := range v.runners {
		if err := r(v); err != nil {
			return "", err
		}
	}
	return v.Val, nil
}

// Required fails when the variable is not set. An empty value counts as set.
func Required(v *Variable) error {
	if !v.Exist {
		return Error{
			VarName: v.Name,
			Reason:  "is not set",
			Cause:   ErrRequired,
		}
	}
	return nil
}
