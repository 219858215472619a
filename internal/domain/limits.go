package domain

// Default population limits.
const (
	DefaultMaxProjects = 1000
	DefaultMaxTasks    = 10000
)

// Limits caps the total number of projects and tasks in the store.
// Counts are taken from the store at check time.
type Limits struct {
	MaxProjects int
	MaxTasks    int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxProjects: DefaultMaxProjects, MaxTasks: DefaultMaxTasks}
}
