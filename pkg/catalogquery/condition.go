package catalogquery

// Condition is the qualitative wear grade of a garment.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "LikeNew"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
	ConditionWorn    Condition = "Worn"
)

// UnrankedCondition is the rank given to any condition outside the table.
const UnrankedCondition = 99

var conditionRanks = map[Condition]int{
	ConditionNew:     1,
	ConditionLikeNew: 2,
	ConditionGood:    3,
	ConditionFair:    4,
	ConditionWorn:    5,
}

// Conditions lists the recognized grades from best to worst.
var Conditions = []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionWorn}

// Rank returns 1 (best) to 5 (worst), or UnrankedCondition.
func (c Condition) Rank() int {
	if r, ok := conditionRanks[c]; ok {
		return r
	}
	return UnrankedCondition
}

// Valid reports whether c is one of the recognized grades.
func (c Condition) Valid() bool {
	_, ok := conditionRanks[c]
	return ok
}

// Lifecycle is the wardrobe-management status of an item.
type Lifecycle string

const (
	LifecycleActive    Lifecycle = "Active"
	LifecycleListed    Lifecycle = "Listed"
	LifecycleSold      Lifecycle = "Sold"
	LifecycleDonated   Lifecycle = "Donated"
	LifecycleDiscarded Lifecycle = "Discarded"
)

// Lifecycles lists every recognized lifecycle state.
var Lifecycles = []Lifecycle{LifecycleActive, LifecycleListed, LifecycleSold, LifecycleDonated, LifecycleDiscarded}

// Valid reports whether l is a recognized lifecycle state.
func (l Lifecycle) Valid() bool {
	switch l {
	case LifecycleActive, LifecycleListed, LifecycleSold, LifecycleDonated, LifecycleDiscarded:
		return true
	}
	return false
}
