package middlewares

import (
	"context"
	"net/http"

	"healthfirst-service/internal/app/services/auth"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a live session on every request.
// A dead token gets 401 so the client clears its state and lands on login.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.IsAuthenticated(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
