package hospital

// DefaultDirectory loads the built-in facility listing.
func DefaultDirectory() *Directory {
	d, err := NewDirectory(defaultEntries())
	if err != nil {
		panic(err)
	}
	return d
}

func defaultEntries() []*Hospital {
	return []*Hospital{
		{
			ID:          "1",
			Name:        "City General Hospital",
			Address:     "123 Main Street, Downtown",
			Distance:    "0.8 km",
			Rating:      4.5,
			Reviews:     1250,
			Phone:       "+1-555-0123",
			Type:        TypeGovernment,
			Specialties: []string{"Emergency", "Cardiology", "Orthopedics", "Pediatrics"},
			Beds:        350,
			Emergency:   true,
			Ambulance:   true,
			OpenHours:   "24/7",
		},
		{
			ID:          "2",
			Name:        "St. Mary's Medical Center",
			Address:     "456 Oak Avenue, Midtown",
			Distance:    "1.2 km",
			Rating:      4.8,
			Reviews:     890,
			Phone:       "+1-555-0456",
			Type:        TypePrivate,
			Specialties: []string{"Oncology", "Neurology", "Surgery", "ICU"},
			Beds:        280,
			Emergency:   true,
			Ambulance:   true,
			OpenHours:   "24/7",
		},
		{
			ID:          "3",
			Name:        "Children's Specialty Hospital",
			Address:     "789 Pine Road, Westside",
			Distance:    "2.1 km",
			Rating:      4.7,
			Reviews:     650,
			Phone:       "+1-555-0789",
			Type:        TypeSpecialty,
			Specialties: []string{"Pediatrics", "Neonatology", "Child Surgery"},
			Beds:        120,
			Emergency:   true,
			Ambulance:   false,
			OpenHours:   "6:00 AM - 10:00 PM",
		},
		{
			ID:          "4",
			Name:        "Metro Community Hospital",
			Address:     "321 Elm Street, Eastside",
			Distance:    "2.8 km",
			Rating:      4.2,
			Reviews:     420,
			Phone:       "+1-555-0321",
			Type:        TypeGovernment,
			Specialties: []string{"General Medicine", "Maternity", "Pharmacy"},
			Beds:        180,
			Emergency:   false,
			Ambulance:   true,
			OpenHours:   "6:00 AM - 8:00 PM",
		},
		{
			ID:          "5",
			Name:        "Advanced Heart Institute",
			Address:     "654 Cedar Lane, Northside",
			Distance:    "3.5 km",
			Rating:      4.9,
			Reviews:     320,
			Phone:       "+1-555-0654",
			Type:        TypeSpecialty,
			Specialties: []string{"Cardiology", "Cardiac Surgery", "Interventional Cardiology"},
			Beds:        80,
			Emergency:   true,
			Ambulance:   true,
			OpenHours:   "24/7",
		},
	}
}
