package listing

type ServiceType string

const (
	TypeStays       ServiceType = "stays"
	TypeFlights     ServiceType = "flights"
	TypeExperiences ServiceType = "experiences"
	TypeEvents      ServiceType = "events"
	TypeEssentials  ServiceType = "essentials"
)

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) IsValid() bool {
	switch t {
	case TypeStays, TypeFlights, TypeExperiences, TypeEvents, TypeEssentials:
		return true
	default:
		return false
	}
}

func AllServiceTypes() []ServiceType {
	return []ServiceType{TypeStays, TypeFlights, TypeExperiences, TypeEvents, TypeEssentials}
}

func NewServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.IsValid() {
		return "", ErrInvalidServiceType
	}
	return t, nil
}
