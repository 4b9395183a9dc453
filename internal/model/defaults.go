// internal/model/defaults.go
package model

// NewPersonnelData returns a personnel payload with every list initialized
// and the availability/invite defaults a freshly dropped node starts with.
func NewPersonnelData() PersonnelData {
	return PersonnelData{
		Proficiencies: Proficiencies{
			Languages:     []string{},
			Frameworks:    []string{},
			PrimarySkills: []string{},
		},
		TeamConnections: []string{},
		Availability: Availability{
			Status:   AvailabilityAvailable,
			Schedule: map[string]DaySchedule{},
		},
		InviteStatus: InvitePending,
	}
}

// NewAnnotationData returns an empty annotation payload.
func NewAnnotationData() AnnotationData {
	return AnnotationData{}
}
