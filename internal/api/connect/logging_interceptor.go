package connect

import (
	"context"
	"time"

	"connectrpc.com/connect"
	zlog "github.com/rs/zerolog/log"
)

// NewLoggingInterceptor creates an interceptor that logs every unary call
// with its duration and resulting code.
func NewLoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			elapsed := time.Since(start)

			procedure := req.Spec().Procedure
			if err != nil {
				code := connect.CodeOf(err)
				if code == connect.CodeInternal || code == connect.CodeUnknown {
					zlog.Error().Msgf("rpc failed: procedure=%s code=%s elapsed=%v error=%v", procedure, code, elapsed, err)
				} else {
					zlog.Warn().Msgf("rpc rejected: procedure=%s code=%s elapsed=%v error=%v", procedure, code, elapsed, err)
				}
				return resp, err
			}

			zlog.Debug().Msgf("rpc: procedure=%s peer=%s elapsed=%v", procedure, req.Peer().Addr, elapsed)
			return resp, nil
		}
	}
}
