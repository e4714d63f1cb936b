package leave

// Store holds the immutable record set built once at startup. It is safe for
// concurrent readers because nothing writes to it after NewStore returns.
type Store struct {
	records []Record
}

// NewStore derives the duration of every seed entry and freezes the result.
func NewStore(seed []RawRecord) *Store {
	records := make([]Record, 0, len(seed))
	for _, raw := range seed {
		records = append(records, Record{
			ServiceCode: raw.ServiceCode,
			IDNumber:    raw.IDNumber,
			Name:        raw.Name,
			DoctorName:  raw.DoctorName,
			JobTitle:    raw.JobTitle,
			ReportDate:  raw.ReportDate,
			StartDate:   raw.StartDate,
			EndDate:     raw.EndDate,
			Days:        Days(raw.StartDate, raw.EndDate),
		})
	}
	return &Store{records: records}
}

// FindOne returns the first record whose service code and id number both match exactly.
func (s *Store) FindOne(serviceCode, idNumber string) (Record, bool) {
	for _, rec := range s.records {
		if rec.ServiceCode == serviceCode && rec.IDNumber == idNumber {
			return rec, true
		}
	}
	return Record{}, false
}

// ListAll returns every record in seed order with the id number removed.
func (s *Store) ListAll() []PublicRecord {
	out := make([]PublicRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Public())
	}
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
