package bridge

// Options are options for creating a new game
type Options struct {
	// AlwaysVisible are opponents whose hands are shown even when the board is hidden
	AlwaysVisible []int

	// RowSize is the number of played cards shown per row
	RowSize int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		AlwaysVisible: []int{2},
		RowSize:       13,
	}
}

func (o Options) isAlwaysVisible(index int) bool {
	for _, i := range o.AlwaysVisible {
		if i == index {
			return true
		}
	}

	return false
}
