package varset

type options struct {
	capacity int
}

// Option configures Values construction.
type Option func(*options)

// WithCapacity pre-sizes the container for n entries. Purely a hint;
// the container grows as needed either way.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
