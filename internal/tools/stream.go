package tools

import "context"

// TokenCallback streams incremental text output while a tool runs, e.g.
// summary sentences as they are selected.
type TokenCallback func(chunk string)

type ctxKey string

// CtxTokenCallbackKey carries a TokenCallback through the tool context.
var CtxTokenCallbackKey ctxKey = "token_cb"

// tokenCallback extracts the streaming callback from ctx, or nil.
func tokenCallback(ctx context.Context) TokenCallback {
	if cb, ok := ctx.Value(CtxTokenCallbackKey).(TokenCallback); ok {
		return cb
	}
	return nil
}
