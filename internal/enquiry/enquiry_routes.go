package enquiry

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

	// Every POST here appends rows the store cannot take back, so they all
	// carry the idempotency guard when redis is wired.
	idempotency := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if redisClient != nil {
		idempotency = middleware.Idempotency(redisClient)
	}

	enquiries := r.Group("/enquiries")
	enquiries.Use(middleware.AuthMiddleware())
	{
		enquiries.GET("", middleware.RBACAuthorize(rbacService, "enquiry", "read"), handler.GetAll)
		enquiries.GET("/counts", middleware.RBACAuthorize(rbacService, "enquiry", "read"), handler.GetCountsByIndent)
		enquiries.POST("", middleware.RBACAuthorize(rbacService, "enquiry", "create"), idempotency, handler.Create)
		enquiries.GET("/:enquiryNo/followups", middleware.RBACAuthorize(rbacService, "enquiry", "read"), handler.GetFollowUps)
		enquiries.POST("/:enquiryNo/followups", middleware.RBACAuthorize(rbacService, "enquiry", "update"), idempotency, handler.AddFollowUp)
		enquiries.POST("/:enquiryNo/promote", middleware.RBACAuthorize(rbacService, "enquiry", "promote"), idempotency, handler.Promote)
	}
}
