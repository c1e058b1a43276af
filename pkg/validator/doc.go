// Package validator provides pure, rule-based input validation for the
// authentication flows.
//
// A Rule pairs a boolean check with the error reported when the check fails.
// Rules are composed with Apply, which collects every failure, or First,
// which stops at the first failing rule so the caller reports exactly one
// reason per value:
//
//	if err := validator.First(validator.StrongPassword("password", pwd)...); err != nil {
//		// err describes the highest-priority unmet rule only
//	}
//
// All rules are side-effect free and independent of each other; callers
// decide sequencing.
package validator
