package core

// RecordSlot persists a single non-negative integer under a fixed name.
// Load returns 0 when nothing usable is stored.
type RecordSlot interface {
	Load() int
	Save(value int) error
}

// MemorySlot is a RecordSlot that lives only in memory.
type MemorySlot struct {
	Value int
	Saves int // Number of Save calls
}

// Load returns the stored value.
func (m *MemorySlot) Load() int {
	return m.Value
}

// Save stores value.
func (m *MemorySlot) Save(value int) error {
	m.Value = value
	m.Saves++
	return nil
}
