package logging

import "context"

type fieldsKey struct{}

// WithFields returns a context carrying key-value pairs that every Logger
// method called with it appends to the entry.
func WithFields(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := fieldsFrom(ctx)
	fields := make([]any, 0, len(prev)+len(args))
	fields = append(fields, prev...)
	fields = append(fields, args...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}

// withContext prepends the context fields to args.
func withContext(ctx context.Context, args []any) []any {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return args
	}
	return append(fields[:len(fields):len(fields)], args...)
}
