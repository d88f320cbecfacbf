package logs

import (
	"context"
	"fmt"
)

// WrapSpan annotates err with the span of ctx, so a failure reported to the
// user can be matched with its log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, v.(Span))
}
