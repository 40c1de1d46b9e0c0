package nerf

import (
	"fmt"
	"math"
)

// Kind is the shape of a SizeRequirement.
type Kind uint8

const (
	KindNone   = Kind(iota) // No space wanted, same as a fixed size of zero.
	KindFixed               // Exactly Size, if possible.
	KindMin                 // At least Min, grows by flex.
	KindMax                 // At most Max, grows by flex up to Max.
	KindMinMax              // Between Min and Max, grows by flex within the band.
	KindFlex                // No bounds, grows purely by flex.
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindFixed:
		return "Fixed"
	case KindMin:
		return "Min"
	case KindMax:
		return "Max"
	case KindMinMax:
		return "MinMax"
	case KindFlex:
		return "Flex"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// unbounded is the upper bound of requirements without a ceiling. Saturating
// arithmetic keeps it absorbing.
const unbounded = math.MaxInt

// SizeRequirement is how much space a widget wants along one axis.
//
// Requirements form a lower bound, an upper bound and a flex weight. The zero
// value is None. Values are comparable with ==; MinMax(n, n, 0) equals Fixed(n).
type SizeRequirement struct {
	min, max, flex int
}

// None wants no space at all.
var None = SizeRequirement{}

// Fixed wants exactly size. It panics if size is not positive.
func Fixed(size int) SizeRequirement {
	if size <= 0 {
		panic(fmt.Sprintf("nerf: fixed size must be positive, got %d", size))
	}
	return SizeRequirement{size, size, 0}
}

// Min wants at least minSize, and grows by flex.
func Min(minSize, flex int) SizeRequirement {
	if minSize <= 0 {
		panic(fmt.Sprintf("nerf: min size must be positive, got %d", minSize))
	}
	checkFlex(flex)
	return SizeRequirement{minSize, unbounded, flex}
}

// Max wants at most maxSize, and grows by flex up to it.
func Max(maxSize, flex int) SizeRequirement {
	if maxSize <= 0 {
		panic(fmt.Sprintf("nerf: max size must be positive, got %d", maxSize))
	}
	checkFlex(flex)
	return SizeRequirement{0, maxSize, flex}
}

// MinMax wants between minSize and maxSize, growing by flex within the band.
func MinMax(minSize, maxSize, flex int) SizeRequirement {
	if minSize <= 0 {
		panic(fmt.Sprintf("nerf: min size must be positive, got %d", minSize))
	}
	if maxSize < minSize {
		panic(fmt.Sprintf("nerf: max size %d smaller than min size %d", maxSize, minSize))
	}
	checkFlex(flex)
	return SizeRequirement{minSize, maxSize, flex}
}

// Flex has no bounds and grows by flex, which must be positive.
func Flex(flex int) SizeRequirement {
	if flex <= 0 {
		panic(fmt.Sprintf("nerf: flex must be positive, got %d", flex))
	}
	return SizeRequirement{0, unbounded, flex}
}

func checkFlex(flex int) {
	if flex < 0 {
		panic(fmt.Sprintf("nerf: flex must not be negative, got %d", flex))
	}
}

// Kind returns the shape of the requirement.
func (s SizeRequirement) Kind() Kind {
	switch {
	case s.max == 0:
		return KindNone
	case s.max == unbounded && s.min == 0:
		return KindFlex
	case s.max == unbounded:
		return KindMin
	case s.min == 0:
		return KindMax
	case s.min == s.max && s.flex == 0:
		return KindFixed
	}
	return KindMinMax
}

// MinSize returns the lower bound, 0 when there is none.
func (s SizeRequirement) MinSize() int {
	return s.min
}

// MaxSize returns the upper bound. The bool is false when the requirement is unbounded.
func (s SizeRequirement) MaxSize() (int, bool) {
	if s.max == unbounded {
		return 0, false
	}
	return s.max, true
}

// FlexWeight returns the share of slack the requirement competes for.
func (s SizeRequirement) FlexWeight() int {
	return s.flex
}

func (s SizeRequirement) String() string {
	switch s.Kind() {
	case KindNone:
		return "None"
	case KindFixed:
		return fmt.Sprintf("Fixed(%d)", s.min)
	case KindMin:
		return fmt.Sprintf("Min(%d, flex %d)", s.min, s.flex)
	case KindMax:
		return fmt.Sprintf("Max(%d, flex %d)", s.max, s.flex)
	case KindMinMax:
		return fmt.Sprintf("MinMax(%d, %d, flex %d)", s.min, s.max, s.flex)
	}
	return fmt.Sprintf("Flex(%d)", s.flex)
}

// Beside combines two requirements for widgets placed next to each other
// across the axis, both getting the same extent: the result satisfies both
// without adding them.
func Beside(a, b SizeRequirement) SizeRequirement {
	return SizeRequirement{
		min:  max(a.min, b.min),
		max:  max(a.max, b.max),
		flex: max(a.flex, b.flex),
	}
}

// Stacked combines two requirements for widgets following each other along
// the axis: the result satisfies their sum.
func Stacked(a, b SizeRequirement) SizeRequirement {
	return SizeRequirement{
		min:  satAdd(a.min, b.min),
		max:  satAdd(a.max, b.max),
		flex: satAdd(a.flex, b.flex),
	}
}

// BesideAll folds Beside over reqs. It returns None for an empty list.
func BesideAll(reqs ...SizeRequirement) SizeRequirement {
	r := None
	for _, req := range reqs {
		r = Beside(r, req)
	}
	return r
}

// StackedAll folds Stacked over reqs. It returns None for an empty list.
func StackedAll(reqs ...SizeRequirement) SizeRequirement {
	r := None
	for _, req := range reqs {
		r = Stacked(r, req)
	}
	return r
}

// Add grows both bounds by n, as padding around a widget does.
// None becomes Fixed(n) and Flex becomes Min(n, flex).
func (s SizeRequirement) Add(n int) SizeRequirement {
	if n < 0 {
		panic(fmt.Sprintf("nerf: cannot add negative size %d", n))
	}
	if n == 0 {
		return s
	}
	return Stacked(s, Fixed(n))
}

// Scale multiplies every field by n. Scaling by zero gives None.
func (s SizeRequirement) Scale(n int) SizeRequirement {
	if n < 0 {
		panic(fmt.Sprintf("nerf: cannot scale by negative factor %d", n))
	}
	if n == 0 {
		return None
	}
	return SizeRequirement{satMul(s.min, n), satMul(s.max, n), satMul(s.flex, n)}
}

// satAdd adds two non-negative ints, saturating at math.MaxInt.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// satMul multiplies two non-negative ints, saturating at math.MaxInt.
func satMul(a, n int) int {
	if a != 0 && n > math.MaxInt/a {
		return math.MaxInt
	}
	return a * n
}
