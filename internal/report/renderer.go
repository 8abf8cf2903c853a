package report

import (
	"context"
	"encoding/json"
	"time"

	dErrors "orbita/pkg/domain-errors"
)

// Renderer turns an assembled report into an output document. Implementations
// must return either a complete document or an error, never a partial one.
type Renderer interface {
	Render(ctx context.Context, rep *Report) ([]byte, error)
}

// JSONRenderer emits the report model as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(_ context.Context, rep *Report) ([]byte, error) {
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "render report")
	}
	return out, nil
}

// RenderWithTimeout runs a renderer under a deadline. On expiry or caller
// cancellation the renderer's eventual output is discarded and a timeout
// error is returned.
func RenderWithTimeout(ctx context.Context, r Renderer, rep *Report, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := r.Render(ctx, rep)
		done <- result{out: out, err: err}
	}()

	select {
	case res := <-done:
		return res.out, res.err
	case <-ctx.Done():
		return nil, dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "report rendering exceeded deadline")
	}
}
