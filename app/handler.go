package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/skywrite/internal/blogservice"
	"github.com/sushihentaime/skywrite/internal/common"
	"github.com/sushihentaime/skywrite/internal/mediaservice"
	"github.com/sushihentaime/skywrite/internal/userservice"
)

type signupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var input signupRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	payload, err := app.userService.Signup(r.Context(), input.Fullname, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.writeErrorResponse(w, r, http.StatusInternalServerError, "email already exists")
		case errors.Is(err, userservice.ErrDuplicateUsername):
			app.writeErrorResponse(w, r, http.StatusInternalServerError, "username already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"access_token": payload.AccessToken,
		"profile_img":  payload.ProfileImg,
		"username":     payload.Username,
		"fullname":     payload.Fullname,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) signinHandler(w http.ResponseWriter, r *http.Request) {
	var input signinRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	payload, err := app.userService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.forbiddenErrorResponse(w, r, "email not found")
		case errors.Is(err, userservice.ErrGoogleAccount):
			app.forbiddenErrorResponse(w, r, err.Error())
		case errors.Is(err, userservice.ErrInvalidCredentials):
			app.forbiddenErrorResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"access_token": payload.AccessToken,
		"profile_img":  payload.ProfileImg,
		"username":     payload.Username,
		"fullname":     payload.Fullname,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type googleAuthRequest struct {
	AccessToken string `json:"access_token"`
}

func (app *application) googleAuthHandler(w http.ResponseWriter, r *http.Request) {
	var input googleAuthRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	payload, err := app.userService.GoogleAuth(r.Context(), input.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrPasswordAccount):
			app.forbiddenErrorResponse(w, r, err.Error())
		case errors.Is(err, userservice.ErrExternalToken):
			app.serverErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"access_token": payload.AccessToken,
		"profile_img":  payload.ProfileImg,
		"username":     payload.Username,
		"fullname":     payload.Fullname,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type createBlogRequest struct {
	Title   string              `json:"title"`
	Des     string              `json:"des"`
	Banner  string              `json:"banner"`
	Content blogservice.Content `json:"content"`
	Tags    []string            `json:"tags"`
	Draft   bool                `json:"draft"`
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input createBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	req := &blogservice.PublishBlogRequest{
		Title:    input.Title,
		Des:      input.Des,
		Banner:   input.Banner,
		Content:  input.Content,
		Tags:     input.Tags,
		Draft:    input.Draft,
		AuthorID: app.getUserContext(r),
	}

	blogID, err := app.blogService.Publish(r.Context(), req)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.invalidAuthenticationTokenResponse(w, r)
		case errors.Is(err, blogservice.ErrAuthorUpdate):
			app.writeErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"id": blogID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type uploadImageRequest struct {
	Image string `json:"image"`
}

func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	var input uploadImageRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	url, err := app.mediaClient.UploadImage(r.Context(), input.Image)
	if err != nil {
		switch {
		case errors.Is(err, mediaservice.ErrUploadFailed):
			app.writeErrorResponse(w, r, http.StatusInternalServerError, "failed to upload image")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"url": url}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	slug, err := app.readSlugParam(r, "blog_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlog(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) latestBlogsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := app.readLimitOffsetParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, err := app.blogService.GetLatestBlogs(r.Context(), limit, offset)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) searchBlogsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit, offset, err := app.readLimitOffsetParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, err := app.blogService.SearchBlogs(r.Context(), query, limit, offset)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
