package engine

import "context"

// Static returns the same output for every input.
type Static struct {
	Output []byte
	Err    error
}

// NewStatic returns an engine that always answers with output.
func NewStatic(output string) *Static { return &Static{Output: []byte(output)} }

// Name returns "static".
func (*Static) Name() string { return "static" }

// Layout returns the canned output or error.
func (s *Static) Layout(ctx context.Context, _ []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Output, nil
}

// Func adapts a function to an engine.
type Func func(ctx context.Context, dot []byte) ([]byte, error)

// Name returns "func".
func (Func) Name() string { return "func" }

// Layout calls f.
func (f Func) Layout(ctx context.Context, dot []byte) ([]byte, error) { return f(ctx, dot) }
