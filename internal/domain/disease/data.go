package disease

// DefaultCatalog loads the built-in disease reference data.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultEntries() []*Info {
	return []*Info{
		{
			ID:       "covid-19",
			Name:     "COVID-19",
			Category: CategoryInfectious,
			Severity: SeverityHigh,
			Symptoms: []string{
				"Fever or chills",
				"Cough (dry or with phlegm)",
				"Shortness of breath",
				"Fatigue",
				"Body aches",
				"Headache",
				"Loss of taste or smell",
				"Sore throat",
				"Runny nose",
			},
			Prevention: []string{
				"Get vaccinated and boosted",
				"Wear masks in crowded places",
				"Maintain physical distance",
				"Wash hands frequently",
				"Avoid touching face",
				"Stay home when sick",
				"Improve ventilation indoors",
			},
			Treatment: []string{
				"Rest and stay hydrated",
				"Take fever reducers if needed",
				"Isolate from others",
				"Monitor oxygen levels",
				"Seek medical care if symptoms worsen",
			},
			WhenToSeekHelp: []string{
				"Difficulty breathing",
				"Persistent chest pain",
				"Confusion or inability to stay awake",
				"Bluish lips or face",
				"High fever for more than 3 days",
			},
			CommonIn: []string{"All age groups", "Higher risk in elderly", "People with chronic conditions"},
			Translations: map[string]Translation{
				"hi": {
					Name: "कोविड-19",
					Symptoms: []string{
						"बुखार या ठंड लगना",
						"खांसी (सूखी या कफ के साथ)",
						"सांस लेने में कठिनाई",
						"थकान",
						"शरीर में दर्द",
						"सिरदर्द",
						"स्वाद या गंध का चले जाना",
						"गले में खराश",
						"नाक बहना",
					},
					Prevention: []string{
						"टीकाकरण कराएं और बूस्टर लें",
						"भीड़भाड़ वाली जगहों पर मास्क पहनें",
						"शारीरिक दूरी बनाए रखें",
						"बार-बार हाथ धोएं",
						"चेहरा छूने से बचें",
						"बीमार होने पर घर पर रहें",
						"घर के अंदर हवा का संचार बेहतर करें",
					},
					Treatment: []string{
						"आराम करें और पानी पिएं",
						"जरूरत पड़ने पर बुखार की दवा लें",
						"दूसरों से अलग रहें",
						"ऑक्सीजन के स्तर पर नजर रखें",
						"लक्षण बिगड़ने पर डॉक्टर से मिलें",
					},
					WhenToSeekHelp: []string{
						"सांस लेने में कठिनाई",
						"छाती में लगातार दर्द",
						"भ्रम या जागे रहने में असमर्थता",
						"होंठ या चेहरे का नीला पड़ना",
						"3 दिन से अधिक तेज बुखार",
					},
				},
			},
		},
		{
			ID:       "dengue",
			Name:     "Dengue Fever",
			Category: CategoryInfectious,
			Severity: SeverityHigh,
			Symptoms: []string{
				"High fever (40°C/104°F)",
				"Severe headache",
				"Eye pain (behind eyes)",
				"Muscle and joint pain",
				"Skin rash",
				"Nausea and vomiting",
				"Mild bleeding (nose, gums)",
			},
			Prevention: []string{
				"Eliminate standing water",
				"Use mosquito nets",
				"Wear long-sleeved clothing",
				"Use mosquito repellent",
				"Keep surroundings clean",
				"Cover water storage containers",
			},
			Treatment: []string{
				"Rest and drink plenty of fluids",
				"Take paracetamol for fever",
				"Avoid aspirin and ibuprofen",
				"Monitor platelet count",
				"Seek immediate medical care",
			},
			WhenToSeekHelp: []string{
				"Severe abdominal pain",
				"Persistent vomiting",
				"Rapid breathing",
				"Bleeding gums",
				"Blood in vomit",
				"Extreme fatigue",
			},
			CommonIn: []string{"Tropical and subtropical areas", "Monsoon season", "Areas with poor sanitation"},
			Translations: map[string]Translation{
				"hi": {
					Name: "डेंगू बुखार",
					Symptoms: []string{
						"तेज बुखार (40°C/104°F)",
						"गंभीर सिरदर्द",
						"आंखों में दर्द (आंखों के पीछे)",
						"मांसपेशियों और जोड़ों में दर्द",
						"त्वचा पर चकत्ते",
						"मतली और उल्टी",
						"हल्की रक्तस्राव (नाक, मसूड़े)",
					},
					Prevention: []string{
						"खड़े पानी को हटाएं",
						"मच्छरदानी का उपयोग करें",
						"लंबी आस्तीन के कपड़े पहनें",
						"मच्छर भगाने वाली दवा का उपयोग करें",
						"आसपास की सफाई रखें",
						"पानी के भंडारण के बर्तनों को ढकें",
					},
					Treatment: []string{
						"आराम करें और खूब तरल पदार्थ पिएं",
						"बुखार के लिए पैरासिटामोल लें",
						"एस्पिरिन और इबुप्रोफेन से बचें",
						"प्लेटलेट काउंट पर नजर रखें",
						"तुरंत चिकित्सा सहायता लें",
					},
					WhenToSeekHelp: []string{
						"पेट में गंभीर दर्द",
						"लगातार उल्टी",
						"तेज सांस लेना",
						"मसूड़ों से खून आना",
						"उल्टी में खून",
						"अत्यधिक थकान",
					},
				},
			},
		},
		{
			ID:       "diabetes",
			Name:     "Diabetes",
			Category: CategoryChronic,
			Severity: SeverityMedium,
			Symptoms: []string{
				"Frequent urination",
				"Excessive thirst",
				"Unexplained weight loss",
				"Extreme fatigue",
				"Blurred vision",
				"Slow-healing wounds",
				"Frequent infections",
			},
			Prevention: []string{
				"Maintain healthy weight",
				"Exercise regularly",
				"Eat balanced diet",
				"Limit sugar intake",
				"Avoid processed foods",
				"Regular health checkups",
				"Manage stress",
			},
			Treatment: []string{
				"Follow prescribed medication",
				"Monitor blood sugar levels",
				"Maintain healthy diet",
				"Regular exercise",
				"Regular doctor visits",
				"Foot care",
				"Eye examinations",
			},
			WhenToSeekHelp: []string{
				"Blood sugar over 300 mg/dL",
				"Persistent vomiting",
				"Signs of dehydration",
				"Difficulty breathing",
				"Confusion",
				"Severe abdominal pain",
			},
			CommonIn: []string{"Adults over 45", "People with family history", "Overweight individuals"},
			Translations: map[string]Translation{
				"hi": {
					Name: "मधुमेह",
					Symptoms: []string{
						"बार-बार पेशाब आना",
						"अत्यधिक प्यास",
						"अस्पष्ट वजन घटना",
						"अत्यधिक थकान",
						"धुंधली दृष्टि",
						"घाव का धीरे भरना",
						"बार-बार संक्रमण",
					},
					Prevention: []string{
						"स्वस्थ वजन बनाए रखें",
						"नियमित व्यायाम करें",
						"संतुलित आहार लें",
						"चीनी का सेवन सीमित करें",
						"प्रसंस्कृत खाद्य पदार्थों से बचें",
						"नियमित स्वास्थ्य जांच",
						"तनाव का प्रबंधन करें",
					},
					Treatment: []string{
						"निर्धारित दवा का पालन करें",
						"रक्त शर्करा के स्तर की निगरानी करें",
						"स्वस्थ आहार बनाए रखें",
						"नियमित व्यायाम",
						"नियमित डॉक्टर की यात्रा",
						"पैरों की देखभाल",
						"आंखों की जांच",
					},
					WhenToSeekHelp: []string{
						"रक्त शर्करा 300 mg/dL से अधिक",
						"लगातार उल्टी",
						"निर्जलीकरण के संकेत",
						"सांस लेने में कठिनाई",
						"भ्रम",
						"पेट में गंभीर दर्द",
					},
				},
			},
		},
		{
			ID:       "malaria",
			Name:     "Malaria",
			Category: CategoryInfectious,
			Severity: SeverityHigh,
			Symptoms: []string{
				"High fever with chills",
				"Sweating",
				"Headache",
				"Nausea and vomiting",
				"Body aches",
				"Fatigue",
				"Diarrhea",
			},
			Prevention: []string{
				"Use mosquito nets",
				"Apply insect repellent",
				"Wear protective clothing",
				"Eliminate stagnant water",
				"Take preventive medication if traveling",
				"Use indoor residual spraying",
			},
			Treatment: []string{
				"Take prescribed antimalarial drugs",
				"Rest and stay hydrated",
				"Monitor temperature",
				"Complete full course of medication",
				"Follow up with healthcare provider",
			},
			WhenToSeekHelp: []string{
				"High fever with chills",
				"Severe headache",
				"Difficulty breathing",
				"Confusion",
				"Seizures",
				"Severe anemia",
			},
			CommonIn: []string{"Tropical regions", "Areas with poor sanitation", "Monsoon season"},
			Translations: map[string]Translation{
				"hi": {
					Name:     "मलेरिया",
					Symptoms: []string{"ठंड के साथ तेज बुखार", "पसीना आना", "सिरदर्द", "मतली और उल्टी", "शरीर में दर्द", "थकान", "दस्त"},
					Prevention: []string{
						"मच्छरदानी का उपयोग करें",
						"कीट प्रतिरोधी लगाएं",
						"सुरक्षात्मक कपड़े पहनें",
						"स्थिर पानी को हटाएं",
						"यात्रा करते समय निवारक दवा लें",
						"इनडोर अवशिष्ट छिड़काव का उपयोग करें",
					},
					Treatment: []string{
						"निर्धारित मलेरिया रोधी दवाएं लें",
						"आराम करें और हाइड्रेटेड रहें",
						"तापमान की निगरानी करें",
						"दवा का पूरा कोर्स पूरा करें",
						"स्वास्थ्य सेवा प्रदाता के साथ फॉलो अप करें",
					},
					WhenToSeekHelp: []string{"ठंड के साथ तेज बुखार", "गंभीर सिरदर्द", "सांस लेने में कठिनाई", "भ्रम", "दौरे", "गंभीर एनीमिया"},
				},
			},
		},
		{
			ID:       "tuberculosis",
			Name:     "Tuberculosis (TB)",
			Category: CategoryInfectious,
			Severity: SeverityHigh,
			Symptoms: []string{
				"Persistent cough (3+ weeks)",
				"Coughing up blood",
				"Chest pain",
				"Weight loss",
				"Fatigue",
				"Fever",
				"Night sweats",
				"Loss of appetite",
			},
			Prevention: []string{
				"Get BCG vaccination",
				"Avoid close contact with TB patients",
				"Maintain good ventilation",
				"Cover mouth when coughing",
				"Maintain good nutrition",
				"Avoid smoking and alcohol",
			},
			Treatment: []string{
				"Take prescribed antibiotics",
				"Complete full treatment course (6-9 months)",
				"Regular medical monitoring",
				"Maintain good nutrition",
				"Isolate until non-infectious",
				"Follow up with healthcare provider",
			},
			WhenToSeekHelp: []string{
				"Persistent cough over 3 weeks",
				"Coughing up blood",
				"Unexplained weight loss",
				"Night sweats",
				"Persistent fever",
				"Chest pain",
			},
			CommonIn: []string{"People with HIV", "Malnourished individuals", "Crowded living conditions"},
			Translations: map[string]Translation{
				"hi": {
					Name: "तपेदिक (टीबी)",
					Symptoms: []string{
						"लगातार खांसी (3+ सप्ताह)",
						"खून की खांसी",
						"छाती में दर्द",
						"वजन घटना",
						"थकान",
						"बुखार",
						"रात को पसीना",
						"भूख न लगना",
					},
					Prevention: []string{
						"बीसीजी टीकाकरण कराएं",
						"टीबी रोगियों के निकट संपर्क से बचें",
						"अच्छी हवा का संचार बनाए रखें",
						"खांसते समय मुंह ढकें",
						"अच्छा पोषण बनाए रखें",
						"धूम्रपान और शराब से बचें",
					},
					Treatment: []string{
						"निर्धारित एंटीबायोटिक्स लें",
						"पूरा उपचार कोर्स पूरा करें (6-9 महीने)",
						"नियमित चिकित्सा निगरानी",
						"अच्छा पोषण बनाए रखें",
						"गैर-संक्रामक होने तक अलग रहें",
						"स्वास्थ्य सेवा प्रदाता के साथ फॉलो अप करें",
					},
					WhenToSeekHelp: []string{
						"3 सप्ताह से अधिक लगातार खांसी",
						"खून की खांसी",
						"अस्पष्ट वजन घटना",
						"रात को पसीना",
						"लगातार बुखार",
						"छाती में दर्द",
					},
				},
			},
		},
	}
}
