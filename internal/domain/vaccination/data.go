package vaccination

// DefaultCatalog builds the catalog from the national immunization dataset
// the application ships with.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultDefinitions())
	if err != nil {
		// The built-in dataset is validated by tests; a bad entry is a
		// programming error.
		panic(err)
	}
	return c
}

func defaultDefinitions() []*VaccineDefinition {
	return []*VaccineDefinition{
		{
			ID:              "bcg",
			Name:            "BCG",
			AgeGroup:        AgeInfant,
			ScheduledAge:    "At birth",
			Description:     "Protects against tuberculosis (TB)",
			Doses:           1,
			BoosterRequired: false,
			SideEffects:     []string{"Small sore at injection site", "Mild fever", "Swollen lymph nodes"},
			Contraindications: []string{
				"Immunocompromised children", "Active TB", "Severe illness",
			},
			Importance: ImportanceEssential,
			Translations: map[string]Translation{
				"hi": {
					Name:              "बीसीजी",
					Description:       "तपेदिक (टीबी) से सुरक्षा प्रदान करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर छोटा घाव", "हल्का बुखार", "सूजी हुई लसीका ग्रंथियां"},
					Contraindications: []string{"प्रतिरक्षा कमजोर बच्चे", "सक्रिय टीबी", "गंभीर बीमारी"},
				},
			},
		},
		{
			ID:              "hepatitis-b",
			Name:            "Hepatitis B",
			AgeGroup:        AgeInfant,
			ScheduledAge:    "At birth, 6 weeks, 14 weeks",
			Description:     "Prevents Hepatitis B infection",
			Doses:           3,
			IntervalText:    "0, 6, 14 weeks",
			BoosterRequired: false,
			SideEffects:     []string{"Pain at injection site", "Mild fever", "Fatigue"},
			Contraindications: []string{
				"Severe allergic reaction to previous dose", "Severe illness",
			},
			Importance: ImportanceEssential,
			Translations: map[string]Translation{
				"hi": {
					Name:              "हेपेटाइटिस बी",
					Description:       "हेपेटाइटिस बी संक्रमण से बचाव करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर दर्द", "हल्का बुखार", "थकान"},
					Contraindications: []string{"पिछली खुराक से गंभीर एलर्जी", "गंभीर बीमारी"},
				},
			},
		},
		{
			ID:              "dpt",
			Name:            "DPT (Diphtheria, Pertussis, Tetanus)",
			AgeGroup:        AgeInfant,
			ScheduledAge:    "6, 10, 14 weeks",
			Description:     "Protects against diphtheria, whooping cough, and tetanus",
			Doses:           3,
			IntervalText:    "4 weeks apart",
			BoosterRequired: true,
			BoosterText:     "16-24 months, then every 10 years",
			SideEffects:     []string{"Redness at injection site", "Mild fever", "Fussiness", "Loss of appetite"},
			Contraindications: []string{
				"Severe allergic reaction", "Brain disorder", "Severe illness",
			},
			Importance: ImportanceEssential,
			Translations: map[string]Translation{
				"hi": {
					Name:              "डीपीटी (डिप्थीरिया, पर्टुसिस, टेटनस)",
					Description:       "डिप्थीरिया, काली खांसी और टेटनस से सुरक्षा प्रदान करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर लालिमा", "हल्का बुखार", "चिड़चिड़ाहट", "भूख न लगना"},
					Contraindications: []string{"गंभीर एलर्जी", "मस्तिष्क विकार", "गंभीर बीमारी"},
				},
			},
		},
		{
			ID:              "polio",
			Name:            "Polio (OPV/IPV)",
			AgeGroup:        AgeInfant,
			ScheduledAge:    "6, 10, 14 weeks",
			Description:     "Prevents poliomyelitis (polio)",
			Doses:           3,
			IntervalText:    "4 weeks apart",
			BoosterRequired: true,
			BoosterText:     "16-24 months",
			SideEffects:     []string{"Mild fever", "Fussiness", "Rarely: allergic reaction"},
			Contraindications: []string{
				"Immunocompromised individuals", "Severe illness", "Allergy to vaccine components",
			},
			Importance: ImportanceEssential,
			Translations: map[string]Translation{
				"hi": {
					Name:              "पोलियो (ओपीवी/आईपीवी)",
					Description:       "पोलियोमाइलाइटिस (पोलियो) से बचाव करता है",
					SideEffects:       []string{"हल्का बुखार", "चिड़चिड़ाहट", "शायद ही कभी: एलर्जी"},
					Contraindications: []string{"प्रतिरक्षा कमजोर व्यक्ति", "गंभीर बीमारी", "वैक्सीन घटकों से एलर्जी"},
				},
			},
		},
		{
			ID:              "mmr",
			Name:            "MMR (Measles, Mumps, Rubella)",
			AgeGroup:        AgeChild,
			ScheduledAge:    "9-12 months",
			Description:     "Protects against measles, mumps, and rubella",
			Doses:           2,
			IntervalText:    "First dose at 9-12 months, second at 16-24 months",
			BoosterRequired: false,
			SideEffects:     []string{"Mild fever", "Rash", "Swollen glands", "Joint pain"},
			Contraindications: []string{
				"Pregnancy", "Immunocompromised", "Severe illness", "Allergy to gelatin/neomycin",
			},
			Importance: ImportanceEssential,
			Translations: map[string]Translation{
				"hi": {
					Name:              "एमएमआर (खसरा, कण्ठमाला, रूबेला)",
					Description:       "खसरा, कण्ठमाला और रूबेला से सुरक्षा प्रदान करता है",
					SideEffects:       []string{"हल्का बुखार", "दाने", "सूजी हुई ग्रंथियां", "जोड़ों में दर्द"},
					Contraindications: []string{"गर्भावस्था", "प्रतिरक्षा कमजोर", "गंभीर बीमारी", "जिलेटिन/नियोमाइसिन से एलर्जी"},
				},
			},
		},
		{
			ID:              "typhoid",
			Name:            "Typhoid",
			AgeGroup:        AgeChild,
			ScheduledAge:    "2 years and above",
			Description:     "Prevents typhoid fever",
			Doses:           1,
			BoosterRequired: true,
			BoosterText:     "Every 3 years",
			SideEffects:     []string{"Pain at injection site", "Mild fever", "Headache"},
			Contraindications: []string{
				"Severe illness", "Immunocompromised", "Age under 2 years",
			},
			Importance: ImportanceRecommended,
			Translations: map[string]Translation{
				"hi": {
					Name:              "टाइफाइड",
					Description:       "टाइफाइड बुखार से बचाव करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर दर्द", "हल्का बुखार", "सिरदर्द"},
					Contraindications: []string{"गंभीर बीमारी", "प्रतिरक्षा कमजोर", "2 साल से कम उम्र"},
				},
			},
		},
		{
			ID:              "hpv",
			Name:            "HPV (Human Papillomavirus)",
			AgeGroup:        AgeAdolescent,
			ScheduledAge:    "9-14 years (girls and boys)",
			Description:     "Prevents cervical cancer and other HPV-related cancers",
			Doses:           2,
			IntervalText:    "6-12 months apart",
			BoosterRequired: false,
			SideEffects:     []string{"Pain at injection site", "Mild fever", "Headache", "Dizziness"},
			Contraindications: []string{
				"Pregnancy", "Severe illness", "Allergy to vaccine components",
			},
			Importance: ImportanceRecommended,
			Translations: map[string]Translation{
				"hi": {
					Name:              "एचपीवी (ह्यूमन पैपिलोमावायरस)",
					Description:       "गर्भाशय ग्रीवा के कैंसर और अन्य एचपीवी संबंधी कैंसर से बचाव करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर दर्द", "हल्का बुखार", "सिरदर्द", "चक्कर आना"},
					Contraindications: []string{"गर्भावस्था", "गंभीर बीमारी", "वैक्सीन घटकों से एलर्जी"},
				},
			},
		},
		{
			ID:              "influenza",
			Name:            "Influenza (Flu)",
			AgeGroup:        AgeAdult,
			ScheduledAge:    "Annual (6 months and older)",
			Description:     "Protects against seasonal influenza",
			Doses:           1,
			IntervalText:    "Annual",
			BoosterRequired: true,
			BoosterText:     "Every year",
			SideEffects:     []string{"Soreness at injection site", "Low-grade fever", "Aches"},
			Contraindications: []string{
				"Severe egg allergy", "Previous severe reaction", "Severe illness",
			},
			Importance: ImportanceRecommended,
			Translations: map[string]Translation{
				"hi": {
					Name:              "इन्फ्लूएंजा (फ्लू)",
					Description:       "मौसमी इन्फ्लूएंजा से सुरक्षा प्रदान करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर दर्द", "हल्का बुखार", "दर्द"},
					Contraindications: []string{"गंभीर अंडे की एलर्जी", "पिछली गंभीर प्रतिक्रिया", "गंभीर बीमारी"},
				},
			},
		},
		{
			ID:              "covid-19",
			Name:            "COVID-19",
			AgeGroup:        AgeAdult,
			ScheduledAge:    "12 years and older",
			Description:     "Protects against COVID-19 infection",
			Doses:           2,
			IntervalText:    "3-8 weeks apart (depending on vaccine type)",
			BoosterRequired: true,
			BoosterText:     "6 months after primary series",
			SideEffects:     []string{"Pain at injection site", "Fatigue", "Headache", "Muscle pain", "Fever"},
			Contraindications: []string{
				"Severe allergic reaction to previous dose", "Severe illness",
			},
			Importance: ImportanceEssential,
			Translations: map[string]Translation{
				"hi": {
					Name:              "कोविड-19",
					Description:       "कोविड-19 संक्रमण से सुरक्षा प्रदान करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर दर्द", "थकान", "सिरदर्द", "मांसपेशियों में दर्द", "बुखार"},
					Contraindications: []string{"पिछली खुराक से गंभीर एलर्जी", "गंभीर बीमारी"},
				},
			},
		},
		{
			ID:              "pneumococcal",
			Name:            "Pneumococcal",
			AgeGroup:        AgeElderly,
			ScheduledAge:    "65 years and older",
			Description:     "Prevents pneumococcal pneumonia and other infections",
			Doses:           1,
			BoosterRequired: false,
			SideEffects:     []string{"Pain at injection site", "Mild fever", "Muscle aches"},
			Contraindications: []string{
				"Severe illness", "Allergy to vaccine components",
			},
			Importance: ImportanceRecommended,
			Translations: map[string]Translation{
				"hi": {
					Name:              "न्यूमोकोकल",
					Description:       "न्यूमोकोकल निमोनिया और अन्य संक्रमणों से बचाव करता है",
					SideEffects:       []string{"इंजेक्शन स्थल पर दर्द", "हल्का बुखार", "मांसपेशियों में दर्द"},
					Contraindications: []string{"गंभीर बीमारी", "वैक्सीन घटकों से एलर्जी"},
				},
			},
		},
	}
}
