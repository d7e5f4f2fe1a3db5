package app

import (
	"os"
	"path/filepath"

	"go-hrfms/internal/enquiry"
	"go-hrfms/internal/indent"
	"go-hrfms/internal/joining"
	"go-hrfms/internal/leaverequest"
	"go-hrfms/internal/leaving"
	"go-hrfms/internal/middleware"
	"go-hrfms/internal/payroll"
	"go-hrfms/internal/rbac"
	"go-hrfms/internal/rbac/infra"
	"go-hrfms/internal/sheets"
	"go-hrfms/internal/transition"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	client sheets.Client,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	runner := transition.NewRunner(logger)

	// --- Repositories ---
	indentRepo := indent.NewRepository(client)
	enquiryRepo := enquiry.NewRepository(client)
	joiningRepo := joining.NewRepository(client, runner)
	leavingRepo := leaving.NewRepository(client, runner)
	leaveRequestRepo := leaverequest.NewRepository(client)
	payrollRepo := payroll.NewRepository(client, logger)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("config", "rbac_model.conf"),
		filepath.Join("config", "rbac_policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	joiningService := joining.NewService(joiningRepo, logger)
	enquiryService := enquiry.NewService(
		enquiryRepo,
		client,
		joiningService,
		runner,
		os.Getenv("SHEETS_FOLDER_ID"),
		logger,
	)
	indentService := indent.NewService(indentRepo, enquiryRepo, logger)
	leavingService := leaving.NewService(leavingRepo, joiningRepo, runner, logger)
	leaveRequestService := leaverequest.NewService(leaveRequestRepo, logger)
	payrollService := payroll.NewService(payrollRepo, logger)

	// --- Handlers ---
	indentHandler := indent.NewHandler(indentService, logger)
	enquiryHandler := enquiry.NewHandler(enquiryService, logger)
	joiningHandler := joining.NewHandler(joiningService, logger)
	leavingHandler := leaving.NewHandler(leavingService, logger)
	leaveRequestHandler := leaverequest.NewHandler(leaveRequestService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)

	// --- Global middleware & Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.Use(middleware.RateLimitByIP(20, 40))

	// Idempotency lives on the mutating routes themselves, after auth, so
	// the user id participates in the cache key.
	api := router.Group("/api/v1")
	{
		indent.RegisterRoutes(api, indentHandler, rbacService, rdb)
		enquiry.RegisterRoutes(api, enquiryHandler, rbacService, rdb)
		joining.RegisterRoutes(api, joiningHandler, rbacService)
		leaving.RegisterRoutes(api, leavingHandler, rbacService, rdb)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
