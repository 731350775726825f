package main

import (
	"context"
	"net/http"
)

type contextKey string

const userIDContextKey = contextKey("userID")

// anonymousUserID marks a request that carried no access token.
const anonymousUserID = 0

func (app *application) createUserContext(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

func (app *application) getUserContext(r *http.Request) int {
	userID, ok := r.Context().Value(userIDContextKey).(int)
	if !ok {
		return anonymousUserID
	}
	return userID
}
