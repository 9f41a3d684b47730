package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every failed request renders.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldsDetail carries per-field form errors keyed by the JSON field name.
type FieldsDetail struct {
	Fields map[string]string `json:"fields"`
}

// ReasonDetail explains why a wizard action was refused.
type ReasonDetail struct {
	Reason string `json:"reason"`
}

func Fields(fields map[string]string) FieldsDetail {
	return FieldsDetail{Fields: fields}
}

func Reason(err error) ReasonDetail {
	return ReasonDetail{Reason: err.Error()}
}

// AbortWithError records err on the context for the error middleware and
// writes the envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
