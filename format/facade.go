package format

// Load converts a stored document into its working-stage value, the
// single conversion consumers use after reading from the database.
func Load(doc any) (any, error) {
	w, err := NewStorage(doc).ToWorking()
	if err != nil {
		return nil, err
	}
	return w.Get(), nil
}

// Store converts a working-stage document into its database-safe form,
// the inverse used before persistence.
func Store(doc any) (any, error) {
	s, err := NewWorking(doc).ToStorage()
	if err != nil {
		return nil, err
	}
	return s.Get(), nil
}
