package ports

// Picker chooses among n alternatives. Implementations must be safe for concurrent use.
type Picker interface {
	// Return a value in [0, n). n is always positive.
	Intn(n int) int
}
