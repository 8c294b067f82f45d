package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"remixjokes/src/app/http/response"
)

const msgFormNotSubmitted = "Form not submitted correctly."

// bindForm binds the posted form into dst after checking that every named
// field was submitted. Empty values count as submitted; the caller's field
// validation reports those. On failure the 400 has already been written.
func bindForm(c *gin.Context, dst any, fields ...string) bool {
	for _, f := range fields {
		if _, ok := c.GetPostForm(f); !ok {
			response.Invalid(c, response.ActionData{FormError: msgFormNotSubmitted})
			return false
		}
	}
	if err := c.ShouldBindWith(dst, binding.Form); err != nil {
		response.Invalid(c, response.ActionData{FormError: msgFormNotSubmitted})
		return false
	}
	return true
}
