package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
)

func auxiliarRouter() *gin.Engine {
	assigned := map[string]bool{"existing@example.com": true}

	router := gin.New()
	router.GET("/courses/:id/auxiliars", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"auxiliars": []gin.H{{
			"auxiliar":    "existing@example.com",
			"permissions": []gin.H{{"permission": "create task"}},
		}}})
	})

	router.POST("/courses/:id/auxiliars", func(c *gin.Context) {
		var req dto.AddAuxiliarRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		if assigned[req.Auxiliar] {
			c.JSON(http.StatusConflict, gin.H{"message": "El auxiliar ya está asignado"})
			return
		}
		assigned[req.Auxiliar] = true
		c.JSON(http.StatusCreated, gin.H{"auxiliar": req.Auxiliar, "permissions": req.Permissions})
	})

	router.DELETE("/courses/:id/auxiliars/:email", func(c *gin.Context) {
		delete(assigned, c.Param("email"))
		c.Status(http.StatusNoContent)
	})

	return router
}

func loadedAuxiliarScreen(t *testing.T) *AuxiliarService {
	app := newTestApp(t, backends{course: auxiliarRouter()})
	screen := app.OpenAuxiliars("course-1")
	require.NoError(t, screen.Load(context.Background()))
	return screen
}

func TestAssignAuxiliar(t *testing.T) {
	screen := loadedAuxiliarScreen(t)
	ctx := context.Background()

	created, result, err := screen.Assign(ctx, "helper@example.com",
		[]models.Permission{models.PermissionCreateExam, models.PermissionComunicate})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.True(t, created.Can(models.PermissionCreateExam))
	assert.False(t, created.Can(models.PermissionCreateTask))
	assert.Len(t, screen.Auxiliars(), 2)
}

func TestAssignRejectsUnknownPermission(t *testing.T) {
	screen := loadedAuxiliarScreen(t)

	_, result, err := screen.Assign(context.Background(), "helper@example.com",
		[]models.Permission{"grade exams"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "unknown permission: grade exams", result.ErrorFor("permissions"))
	assert.Len(t, screen.Auxiliars(), 1)
}

func TestAssignRejectsInvalidEmail(t *testing.T) {
	screen := loadedAuxiliarScreen(t)

	_, result, err := screen.Assign(context.Background(), "not-an-email",
		[]models.Permission{models.PermissionCreateTask})
	require.Error(t, err)
	assert.Equal(t, "must be a valid email address", result.ErrorFor("auxiliar"))
}

func TestAssignDuplicateSurfacesConflict(t *testing.T) {
	screen := loadedAuxiliarScreen(t)

	_, _, err := screen.Assign(context.Background(), "existing@example.com",
		[]models.Permission{models.PermissionCreateTask})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "El auxiliar ya está asignado", apperrors.UserMessage(err))
	assert.Len(t, screen.Auxiliars(), 1)
}

func TestRevokeAuxiliar(t *testing.T) {
	screen := loadedAuxiliarScreen(t)

	require.NoError(t, screen.Revoke(context.Background(), "existing@example.com"))
	assert.Empty(t, screen.Auxiliars())
	assert.True(t, screen.Stale())
}
