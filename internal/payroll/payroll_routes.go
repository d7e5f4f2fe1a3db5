package payroll

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

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			payrolls.POST(
				"",
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			payrolls.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Create)
		}
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		// Compute derives figures without writing anything, so it takes no
		// idempotency guard even though it travels as POST.
		payrolls.POST("/compute", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.Compute)
	}
}
