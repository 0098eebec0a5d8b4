package css

import "fmt"

// Specificity is a cascade specificity triple: id count, class plus
// attribute plus pseudo-class count, element plus pseudo-element
// count. Higher wins in the cascade.
type Specificity [3]int

// Add returns the component-wise sum of two specificities.
func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// Compare returns -1 when s is lower than o, 1 when higher and 0 when
// equal.
func (s Specificity) Compare(o Specificity) int {
	for i := range s {
		switch {
		case s[i] < o[i]:
			return -1
		case s[i] > o[i]:
			return 1
		}
	}
	return 0
}

// String returns the conventional "a,b,c" form.
func (s Specificity) String() string {
	return fmt.Sprintf("%d,%d,%d", s[0], s[1], s[2])
}
