package leaving

import (
	"go-hrfms/internal/middleware"
	"go-hrfms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	leavings := r.Group("/leavings")
	leavings.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			leavings.POST(
				"",
				middleware.RBACAuthorize(rbacService, "leaving", "create"),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			leavings.POST("", middleware.RBACAuthorize(rbacService, "leaving", "create"), handler.Create)
		}
		leavings.GET("", middleware.RBACAuthorize(rbacService, "leaving", "read"), handler.GetAll)
		leavings.GET("/pending", middleware.RBACAuthorize(rbacService, "leaving", "read"), handler.GetPending)
		leavings.GET("/history", middleware.RBACAuthorize(rbacService, "leaving", "read"), handler.GetHistory)
		leavings.PUT("/:employeeID/checklist", middleware.RBACAuthorize(rbacService, "leaving", "update"), handler.Complete)
		// Deactivation retry overwrites the same status cell on every run;
		// deduping it would swallow the retry.
		leavings.POST("/:employeeID/retry-deactivation", middleware.RBACAuthorize(rbacService, "leaving", "update"), handler.RetryDeactivation)
	}
}
