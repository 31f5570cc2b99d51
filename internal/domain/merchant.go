package domain

// HistoryEntry is one line of a merchant task's processing log.
type HistoryEntry struct {
	Date   string
	Action string
}

// Merchant is the aggregate for one license-renewal task. ExpireDate uses the
// YYYY-MM-DD layout everywhere; month filters are string-prefix tests on it.
type Merchant struct {
	ID        string
	Name      string
	LicenseNo string
	OwnerName string
	Address   string
	Phone     string
	ExpireDate string
	// DaysRemaining is ceil((ExpireDate - simulated clock) / 24h) for active
	// tasks. Historical records carry the -100 sentinel and never use it.
	DaysRemaining int
	Status        TaskStatus
	StaffID       string
	District      District
	History       []HistoryEntry
}

// Clone returns a deep copy so callers can hold or modify a snapshot without
// touching the shared collection.
func (m Merchant) Clone() Merchant {
	out := m
	if m.History != nil {
		out.History = make([]HistoryEntry, len(m.History))
		copy(out.History, m.History)
	}
	return out
}
