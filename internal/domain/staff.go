package domain

// Staff models a field officer responsible for merchant tasks in one district.
type Staff struct {
	ID         string
	Name       string
	EmployeeID string
	Area       District
	Phone      string
	// ActiveTasks and CompletedTasks are derived at generation time from the
	// merchant collection; they are a snapshot, not live counters.
	ActiveTasks    int
	CompletedTasks int
}
