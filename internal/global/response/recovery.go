package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"

	"student-portal-system/internal/global/logger"
)

// Recovery converts a handler panic into a 500 envelope instead of a
// dropped connection. Installed via middleware.Recovery.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		logger.New("Recovery").Error("panic recovered",
			"error", err,
			"path", c.Request.URL.Path,
		)
		Fail(c, ErrDatabase.WithOrigin(pkgerrors.WithStack(err)))
		c.Abort()
	}
}
