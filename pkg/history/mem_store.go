package history

// NewMemStore returns a Store that keeps records in memory.
func NewMemStore(records ...Record) Store {
	return &memStore{records}
}

type memStore struct{ records []Record }

func (s *memStore) Records(command string) ([]Record, error) {
	var records []Record
	for _, r := range s.records {
		if r.Command == command {
			records = append(records, r)
		}
	}
	return records, nil
}

func (s *memStore) Add(r Record) error {
	s.records = append(s.records, r)
	return nil
}

func (s *memStore) Close() error { return nil }
