package indent

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

	indents := r.Group("/indents")
	indents.Use(middleware.AuthMiddleware())
	{
		indents.GET("", middleware.RBACAuthorize(rbacService, "indent", "read"), handler.GetAll)
		indents.GET("/pending", middleware.RBACAuthorize(rbacService, "indent", "read"), handler.GetPending)
		indents.GET("/history", middleware.RBACAuthorize(rbacService, "indent", "read"), handler.GetHistory)
		if redisClient != nil {
			indents.POST(
				"",
				middleware.RBACAuthorize(rbacService, "indent", "create"),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			indents.POST("", middleware.RBACAuthorize(rbacService, "indent", "create"), handler.Create)
		}
		indents.PUT("/:indentNo/status", middleware.RBACAuthorize(rbacService, "indent", "update"), handler.UpdateStatus)
	}
}
