package utils

const (
	// DefaultLimit is the page size used when none is supplied
	DefaultLimit = 10
	// MaxLimit caps a single page
	MaxLimit = 100
)

// SkipLimit normalizes offset-style pagination parameters
func SkipLimit(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
