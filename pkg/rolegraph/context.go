package rolegraph

import "context"

// subjectCtxKey is the context key for storing the acting subject.
type subjectCtxKey struct{}

// SetSubjectToContext stores the acting subject's name in the context.
func SetSubjectToContext(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectCtxKey{}, subject)
}

// GetSubjectFromContext retrieves the acting subject's name from the context.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey{}).(string)
	return subject, ok
}

// HasLinkFromContext reports whether the subject stored in the context
// inherits the given role. It fails with ErrSubjectNotInContext when no
// subject is set.
func (m *Manager) HasLinkFromContext(ctx context.Context, role string, domain ...string) (bool, error) {
	subject, ok := GetSubjectFromContext(ctx)
	if !ok {
		return false, ErrSubjectNotInContext
	}
	return m.HasLink(subject, role, domain...), nil
}
