package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// auth
	router.HandlerFunc(http.MethodPost, "/signup", app.signupHandler)
	router.HandlerFunc(http.MethodPost, "/signin", app.signinHandler)
	router.HandlerFunc(http.MethodPost, "/google-auth", app.googleAuthHandler)

	// blogs
	router.HandlerFunc(http.MethodPost, "/create-blog", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/blogs", app.latestBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/search-blogs", app.searchBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/blogs/:blog_id", app.getBlogHandler)

	// media
	router.HandlerFunc(http.MethodPost, "/upload", app.requireAuthUser(app.uploadImageHandler))

	return app.recoverPanic(app.enableCORS(app.rateLimit(app.logRequest(app.authenticate(router)))))
}
