package accumulator

import "errors"

// Sentinel errors returned by accumulator operations. Callers compare
// against these with errors.Is rather than matching error strings.
var (
	// ErrDuplicateElement is returned by Add and AddBatch when the element
	// is already a member of the set.
	ErrDuplicateElement = errors.New("accumulator: element already present")

	// ErrElementNotFound is returned by Delete, Update, and ProveMembership
	// when the element is not a member of the set.
	ErrElementNotFound = errors.New("accumulator: element not found")

	// ErrElementPresent is returned by ProveNonMembership when the element
	// is in fact a member of the set.
	ErrElementPresent = errors.New("accumulator: element is present")

	// ErrArithmeticDomain is returned when a required field inverse does
	// not exist. This can only happen when an element's field encoding
	// equals the secret scalar, which has negligible probability and
	// indicates either an adversarial input or a broken trusted setup.
	ErrArithmeticDomain = errors.New("accumulator: required inverse does not exist")

	// ErrNonMembershipInfeasible is returned when the extended Euclidean
	// algorithm fails to produce a unit gcd while constructing a
	// non-membership witness, despite the element having already been
	// checked absent from the set. This is an internal invariant
	// violation, not a routine error.
	ErrNonMembershipInfeasible = errors.New("accumulator: non-membership proof infeasible")

	// ErrCoprimalityFailed is returned when constructing an intersection or
	// union proof and the complement polynomials turn out not to be
	// coprime, which would mean the computed intersection was wrong. Like
	// ErrNonMembershipInfeasible, this is an internal invariant violation.
	ErrCoprimalityFailed = errors.New("accumulator: set-relation proof infeasible")
)
