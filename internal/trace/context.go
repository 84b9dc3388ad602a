package trace

import "context"

type ctxKey struct{}

// carrier: трассировщик и текущий span, которые едут в context вместе.
type carrier struct {
	tracer Tracer
	span   uint64
}

func carrierOf(ctx context.Context) carrier {
	if ctx != nil {
		if c, ok := ctx.Value(ctxKey{}).(carrier); ok {
			return c
		}
	}
	return carrier{tracer: Nop}
}

// WithTracer attaches t to ctx. A nil t disables tracing.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, carrier{tracer: t})
}

// FromContext returns the Tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return carrierOf(ctx).tracer
}

// ParentID returns the innermost span started through Start (0 at the root).
func ParentID(ctx context.Context) uint64 {
	return carrierOf(ctx).span
}

// Start begins a span under the one carried by ctx. The returned context
// makes the new span the parent of everything started from it.
// A span filtered out by the level keeps the old parent in the context.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	c := carrierOf(ctx)
	span := Begin(c.tracer, scope, name, c.span)
	if span.ID() == 0 {
		return ctx, span
	}
	return context.WithValue(ctx, ctxKey{}, carrier{tracer: c.tracer, span: span.ID()}), span
}
