package graphql

// Call tracks one in-flight operation started with Operation.Start.
type Call[R any] struct {
	done chan struct{}
	data *R
	err  error
}

func newCall[R any]() *Call[R] {
	return &Call[R]{done: make(chan struct{})}
}

func (c *Call[R]) finish(data *R, err error) {
	c.data = data
	c.err = err
	close(c.done)
}

// Loading reports whether the operation is still in flight.
func (c *Call[R]) Loading() bool {
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Done is closed once the result is available.
func (c *Call[R]) Done() <-chan struct{} {
	return c.done
}

// Result blocks until the operation completes and returns what Execute
// returned.
func (c *Call[R]) Result() (*R, error) {
	<-c.done
	return c.data, c.err
}
