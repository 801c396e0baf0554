package backend

import "context"

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, bool)

func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) { return f(ctx) }

type tokenKey struct{}

// WithToken attaches a bearer token to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// ContextTokenSource reads the token stored by WithToken.
func ContextTokenSource() TokenSource {
	return TokenSourceFunc(TokenFromContext)
}

// StaticToken always returns the same token. An empty token sends no header.
func StaticToken(token string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, bool) {
		return token, token != ""
	})
}
