package graph

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type graphRequest struct {
	Operation string          `json:"operation" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// Handler returns a gin handler that executes catalog operations.
// Unexpected store failures on queries surface as 500; mutations carry their
// failures inside the returned payload.
func (c *Catalog) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req graphRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		result, err := c.Execute(req.Operation, req.Arguments)
		if err != nil {
			if errors.Is(err, ErrUnknownOperation) || errors.Is(err, ErrInvalidArguments) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"data": result})
	}
}
