package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure path answers with the same envelope: a JSON object
// carrying an "error" message. Store faults are reported with a fixed,
// non-sensitive diagnostic and never escape as unhandled panics.

func RespondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

func RespondBadRequest(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusBadRequest, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, message)
}
