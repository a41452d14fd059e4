package depot

// borrowFlag tracks the live views of one column: any number of readers or
// a single writer.
type borrowFlag struct {
	readers int
	writer  bool
}

func (f *borrowFlag) conflict(name string, mode BorrowMode) error {
	if f.writer || (mode == BorrowWrite && f.readers > 0) {
		return BorrowConflictError{
			Component: name,
			Requested: mode,
			Readers:   f.readers,
			Writer:    f.writer,
		}
	}
	return nil
}

func (f *borrowFlag) acquire(name string, mode BorrowMode) error {
	if err := f.conflict(name, mode); err != nil {
		return err
	}
	if mode == BorrowWrite {
		f.writer = true
	} else {
		f.readers++
	}
	return nil
}

func (f *borrowFlag) release(mode BorrowMode) {
	if mode == BorrowWrite {
		f.writer = false
		return
	}
	if f.readers > 0 {
		f.readers--
	}
}

func (f *borrowFlag) busy() bool {
	return f.writer || f.readers > 0
}
