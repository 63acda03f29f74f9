package gap

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	_, ok := severity[u]
	return ok
}

// Severity orders urgencies, critical first (0).
func (u Urgency) Severity() int {
	if s, ok := severity[u]; ok {
		return s
	}
	return len(severity)
}

var severity = map[Urgency]int{
	UrgencyCritical: 0,
	UrgencyHigh:     1,
	UrgencyMedium:   2,
	UrgencyLow:      3,
}

type DiscountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var discountRanges = map[Urgency]DiscountRange{
	UrgencyCritical: {Min: 20, Max: 35},
	UrgencyHigh:     {Min: 15, Max: 25},
	UrgencyMedium:   {Min: 10, Max: 20},
	UrgencyLow:      {Min: 5, Max: 10},
}

func (u Urgency) DiscountRange() DiscountRange {
	return discountRanges[u]
}
