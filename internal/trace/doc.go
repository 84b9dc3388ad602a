// Package trace records what the driver does with each file: batch
// boundaries, per-file scans and, at the debug level, every token.
//
// Enable it from the command line:
//
//	lambdalex tokenize --trace=- --trace-level=detail examples/
//
// Levels map to scopes: phase emits driver spans, detail adds file spans,
// debug adds token points.
//
// Spans nest through the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "scan")
//	defer span.End("")
package trace
