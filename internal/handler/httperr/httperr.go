package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint writes: a single message
// under "error", optionally with machine-readable detail.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	// must be a *gin.Error: a value re-wraps as private and drops the meta
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
