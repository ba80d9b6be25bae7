package diag

import "fmt"

// Code identifies a diagnostic category. Ranges group related checks:
// 1xxx — message/field validation, 2xxx — type resolution,
// 3xxx — registry self-checks.
type Code uint16

const (
	UnknownCode Code = 0

	// Message/field validation.
	ValNoMessages         Code = 1000
	ValEmptyMessageName   Code = 1001
	ValDuplicateMessage   Code = 1002
	ValDuplicateField     Code = 1003
	ValDuplicateNested    Code = 1004
	ValNestingTooDeep     Code = 1005
	ValEnumUnbound        Code = 1006
	ValDeprecatedOverlap  Code = 1007

	// Type resolution.
	ResUnknownType   Code = 2000
	ResBadArrayBound Code = 2001

	// Registry reference scan.
	RegDanglingReference Code = 3000
)

// ID renders the code with its range prefix, e.g. "VAL1002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("REG%04d", ic)
	default:
		return fmt.Sprintf("GEN%04d", ic)
	}
}

func (c Code) String() string { return c.ID() }
