package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"andes/quipu_loan_decisioning/configs"
	"andes/quipu_loan_decisioning/internal/app/handlers"
	"andes/quipu_loan_decisioning/internal/app/middleware"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/kafka/producer"
	"andes/quipu_loan_decisioning/internal/pkg/notification"
	"andes/quipu_loan_decisioning/internal/pkg/pubsub"
	"andes/quipu_loan_decisioning/internal/pkg/services"
	"andes/quipu_loan_decisioning/internal/pkg/store"
	"andes/quipu_loan_decisioning/internal/pkg/store/repository"
	"andes/quipu_loan_decisioning/internal/pkg/utils/worker"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {
	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	applicationRepo := store.NewApplicationRepository()
	transitionRepo := store.NewStateTransitionRepository()
	branchRepo := store.NewBranchRepository()
	agentRepo := store.NewAgentRepository()
	accountRepo := store.NewAccountRepository()
	scheduleRepo := store.NewRepaymentScheduleRepository()
	accountingRepo := store.NewAccountingEntryRepository()
	ledgerRepo := store.NewLedgerTransactionRepository()
	disbursementRepo := store.NewDisbursementRequestRepository()
	tenantSettingsRepo := store.NewTenantSettingsRepository()

	auditPublisher := producer.NewKafkaAuditService()
	notificationService := notification.NewNotificationService(pubsubPublisher)

	stateMachineService := services.NewStateMachineService(applicationRepo, transitionRepo, auditPublisher)
	routingService := services.NewRoutingService(applicationRepo, transitionRepo, branchRepo, agentRepo, auditPublisher)
	decisionService := services.NewDecisionService(workerPool, applicationRepo, transitionRepo, tenantSettingsRepo, auditPublisher, notificationService)
	disbursementService := services.NewDisbursementService(workerPool, db.MDB, applicationRepo, transitionRepo, accountRepo, scheduleRepo, accountingRepo, ledgerRepo, disbursementRepo, redisAdapter, auditPublisher, notificationService)

	applicationHandler := handlers.NewApplicationHandler(stateMachineService)
	routingHandler := handlers.NewRoutingHandler(routingService)
	decisionHandler := handlers.NewDecisionHandler(decisionService)
	disbursementHandler := handlers.NewDisbursementHandler(disbursementService)

	api := r.Group("/decisioning/v1/applications/:applicationId")
	{
		api.GET("", applicationHandler.GetApplication)
		api.POST("/transitions", applicationHandler.TransitionStatus)
		api.POST("/route", routingHandler.RouteApplication)
		api.POST("/reassign", routingHandler.ReassignAgent)
		api.POST("/score", decisionHandler.ScoreApplication)
		api.POST("/decisions", decisionHandler.ManualDecision)
		api.POST("/decisions/automatic", decisionHandler.AutomaticDecision)
		api.POST("/disbursement", disbursementHandler.Disburse)
	}

	r.GET("/decisioning/v1/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"message": "Health Check"})
	})

	return r
}
