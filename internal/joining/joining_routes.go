package joining

import (
	"go-hrfms/internal/middleware"
	"go-hrfms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	joinings := r.Group("/joinings")
	joinings.Use(middleware.AuthMiddleware())
	{
		joinings.GET("", middleware.RBACAuthorize(rbacService, "joining", "read"), handler.GetAll)
		joinings.GET("/pending", middleware.RBACAuthorize(rbacService, "joining", "read"), handler.GetPending)
		joinings.GET("/history", middleware.RBACAuthorize(rbacService, "joining", "read"), handler.GetHistory)
		joinings.PUT("/:employeeID/checklist", middleware.RBACAuthorize(rbacService, "joining", "update"), handler.CompleteChecklist)
	}
}
