package leave

// SeedRecords returns the built-in dataset. Days is derived by NewStore and is
// deliberately absent here.
func SeedRecords() []RawRecord {
	return []RawRecord{
		{
			ServiceCode: "GSL25021372778",
			IDNumber:    "1088576044",
			Name:        "Abdullah Saleh Alharbi",
			DoctorName:  "Dr. Faisal Alqahtani",
			JobTitle:    "Consultant Family Medicine",
			ReportDate:  "2025-02-09",
			StartDate:   "2025-02-09",
			EndDate:     "2025-02-24",
		},
		{
			ServiceCode: "GSL25030418841",
			IDNumber:    "1102934857",
			Name:        "Nora Ahmed Alshehri",
			DoctorName:  "Dr. Huda Alzahrani",
			JobTitle:    "Specialist Internal Medicine",
			ReportDate:  "2025-03-04",
			StartDate:   "2025-03-04",
			EndDate:     "2025-03-06",
		},
		{
			ServiceCode: "GSL25031190327",
			IDNumber:    "1047721936",
			Name:        "Khalid Mohammed Alotaibi",
			DoctorName:  "Dr. Sami Alghamdi",
			JobTitle:    "General Practitioner",
			ReportDate:  "2025-03-11",
			StartDate:   "2025-03-11",
			EndDate:     "2025-03-11",
		},
		{
			ServiceCode: "PSL25040255109",
			IDNumber:    "2390016478",
			Name:        "Rashid Omar Khan",
			DoctorName:  "Dr. Maha Aldossary",
			JobTitle:    "Orthopedic Surgeon",
			ReportDate:  "2025-04-01",
			StartDate:   "2025-04-02",
			EndDate:     "2025-04-15",
		},
		{
			ServiceCode: "GSL25051763902",
			IDNumber:    "1075530291",
			Name:        "Sara Ibrahim Almutairi",
			DoctorName:  "Dr. Yousef Alanazi",
			JobTitle:    "Specialist Obstetrics and Gynecology",
			ReportDate:  "2025-05-17",
			StartDate:   "2025-05-17",
			EndDate:     "2025-05-20",
		},
		{
			ServiceCode: "GSL25062208816",
			IDNumber:    "1093384620",
			Name:        "Turki Nasser Alsubaie",
			DoctorName:  "Dr. Faisal Alqahtani",
			JobTitle:    "Consultant Family Medicine",
			ReportDate:  "2025-06-22",
			StartDate:   "2025-06-22",
			EndDate:     "2025-06-28",
		},
	}
}
