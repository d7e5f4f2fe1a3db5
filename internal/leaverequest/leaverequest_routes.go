package leaverequest

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

	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			leaves.POST(
				"",
				middleware.RBACAuthorize(rbacService, "leaverequest", "create"),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			leaves.POST("", middleware.RBACAuthorize(rbacService, "leaverequest", "create"), handler.Create)
		}
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leaverequest", "read"), handler.GetAll)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leaverequest", "read"), handler.GetPending)
		leaves.GET("/decided", middleware.RBACAuthorize(rbacService, "leaverequest", "read"), handler.GetDecided)
		leaves.PUT("/:serialNo/approve", middleware.RBACAuthorize(rbacService, "leaverequest", "approve"), handler.Approve)
		leaves.PUT("/:serialNo/reject", middleware.RBACAuthorize(rbacService, "leaverequest", "approve"), handler.Reject)
	}
}
