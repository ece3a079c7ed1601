package requisition

const (
	RequirementRampUp      = "Ramp up"
	RequirementNew         = "New Requirement"
	RequirementReplacement = "Replacement"
)

var requirementTypes = []string{RequirementRampUp, RequirementNew, RequirementReplacement}

const (
	HiringTATFastag     = "fastag"
	HiringTATNormalCat1 = "normalCat1"
	HiringTATNormalCat2 = "normalCat2"
)

// hiring turnaround target in days
var hiringTATDays = map[string]int{
	HiringTATFastag:     60,
	HiringTATNormalCat1: 90,
	HiringTATNormalCat2: 120,
}

func IsRequirementType(v string) bool {
	for _, t := range requirementTypes {
		if t == v {
			return true
		}
	}
	return false
}

// HiringTATDays returns the target days and whether v is a known category.
func HiringTATDays(v string) (int, bool) {
	days, ok := hiringTATDays[v]
	return days, ok
}
