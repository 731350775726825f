package blogservice

import (
	"github.com/sushihentaime/skywrite/internal/common"
)

// validateBlog checks the publish rules in order and reports only the
// first failure. Drafts skip everything beyond the title.
func validateBlog(req *PublishBlogRequest) error {
	fail := func(field, message string) error {
		v := common.NewValidator()
		v.AddError(field, message)
		return v.ValidationError()
	}

	if len(req.Title) == 0 {
		return fail("title", "you must provide a title")
	}

	if req.Draft {
		return nil
	}

	if len(req.Des) == 0 || len(req.Des) > maxDesLength {
		return fail("des", "you must provide a blog description under 200 characters")
	}

	if len(req.Banner) == 0 {
		return fail("banner", "you must provide a banner to publish the blog")
	}

	if len(req.Content.Blocks) == 0 {
		return fail("content", "there must be some blog content to publish the blog")
	}

	if len(req.Tags) == 0 || len(req.Tags) > maxTags {
		return fail("tags", "provide tags in order to publish the blog, maximum 10")
	}

	return nil
}

const (
	maxDesLength = 200
	maxTags      = 10
)
