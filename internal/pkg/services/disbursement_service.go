package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/configs"
	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/scoring"
	"andes/quipu_loan_decisioning/internal/pkg/store/repository"
	"andes/quipu_loan_decisioning/internal/pkg/utils/worker"
)

const disbursementHintKeyPrefix = "disb:req:"

// DisbursementService executes the release of approved funds: schedule
// generation, double-entry bookkeeping, ledger postings, account credit
// and finalization of the application, all inside one Mongo transaction.
// The caller-supplied request id makes the operation idempotent.
type DisbursementService struct {
	workerPool          *worker.WorkerPool
	txRunner            db.TxRunner
	applicationRepo     ApplicationStoreInterface
	transitionRepo      TransitionStoreInterface
	accountRepo         AccountStoreInterface
	scheduleRepo        ScheduleStoreInterface
	accountingRepo      AccountingStoreInterface
	ledgerRepo          LedgerStoreInterface
	disbursementRepo    DisbursementStoreInterface
	redisStore          repository.RedisStoreInterface
	auditPublisher      AuditPublisherInterface
	notificationService NotificationServiceInterface
}

func NewDisbursementService(workerPool *worker.WorkerPool, txRunner db.TxRunner, applicationRepo ApplicationStoreInterface, transitionRepo TransitionStoreInterface, accountRepo AccountStoreInterface, scheduleRepo ScheduleStoreInterface, accountingRepo AccountingStoreInterface, ledgerRepo LedgerStoreInterface, disbursementRepo DisbursementStoreInterface, redisStore repository.RedisStoreInterface, auditPublisher AuditPublisherInterface, notificationService NotificationServiceInterface) *DisbursementService {
	return &DisbursementService{
		workerPool:          workerPool,
		txRunner:            txRunner,
		applicationRepo:     applicationRepo,
		transitionRepo:      transitionRepo,
		accountRepo:         accountRepo,
		scheduleRepo:        scheduleRepo,
		accountingRepo:      accountingRepo,
		ledgerRepo:          ledgerRepo,
		disbursementRepo:    disbursementRepo,
		redisStore:          redisStore,
		auditPublisher:      auditPublisher,
		notificationService: notificationService,
	}
}

func (s *DisbursementService) Disburse(ctx context.Context, tenantID string, applicationID primitive.ObjectID, requestID string, accountID primitive.ObjectID, userID string) (*models.DisbursementDetails, error) {
	// The Redis hint short-circuits obvious retries. The durable record
	// checked next is the actual source of truth, a cache miss here
	// proves nothing.
	if _, found, err := s.redisStore.Get(ctx, disbursementHintKeyPrefix+requestID); err != nil {
		logger.Warn(ctx, "Idempotency hint lookup failed for request %s: %v", requestID, err)
	} else if found {
		return nil, consts.ErrorDuplicateRequest
	}

	existing, err := s.disbursementRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, consts.ErrorDuplicateRequest
	}

	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorAlreadyDisbursed
	}
	if application.Status != models.StatusApproved {
		return nil, consts.ErrorInvalidState
	}
	if application.LoanAmount <= 0 || application.TermMonths <= 0 {
		return nil, consts.ErrorInvalidLoanTerms
	}

	account, err := s.accountRepo.GetAccount(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Status != models.AccountStatusActive || account.ApplicantDocumentID != application.Applicant.DocumentID {
		return nil, consts.ErrorInvalidAccount
	}

	now := time.Now().UTC()
	schedule := GenerateSchedule(tenantID, applicationID, application.LoanAmount, application.TermMonths, now)
	accountingEntries, totalInterest := buildAccountingEntries(tenantID, application, schedule, now)

	details := models.DisbursementDetails{
		AccountID:   accountID,
		BranchID:    branchOf(application),
		Amount:      application.LoanAmount,
		ProcessedAt: now,
	}

	err = s.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.InsertEntries(txCtx, schedule); err != nil {
			return err
		}
		if err := s.accountingRepo.InsertEntries(txCtx, accountingEntries); err != nil {
			return err
		}
		if err := s.ledgerRepo.PostTransaction(txCtx, models.LedgerTransaction{
			ID:        primitive.NewObjectID(),
			TenantID:  tenantID,
			Type:      consts.LedgerTypeDisbursement,
			Reference: application.GUID,
			Amount:    application.LoanAmount,
			PostedAt:  now,
		}); err != nil {
			return err
		}
		if err := s.ledgerRepo.PostTransaction(txCtx, models.LedgerTransaction{
			ID:        primitive.NewObjectID(),
			TenantID:  tenantID,
			Type:      consts.LedgerTypeAccountCredit,
			Reference: application.GUID,
			AccountID: &accountID,
			Amount:    application.LoanAmount,
			PostedAt:  now,
		}); err != nil {
			return err
		}
		if err := s.accountRepo.CreditBalance(txCtx, tenantID, accountID, application.LoanAmount); err != nil {
			return err
		}
		matched, err := s.applicationRepo.FinalizeDisbursement(txCtx, tenantID, applicationID, details)
		if err != nil {
			return err
		}
		if !matched {
			return consts.ErrorAlreadyDisbursed
		}
		if err := s.disbursementRepo.CreateRecord(txCtx, models.DisbursementRecord{
			ID:            primitive.NewObjectID(),
			RequestID:     requestID,
			TenantID:      tenantID,
			ApplicationID: applicationID,
			Amount:        application.LoanAmount,
			ProcessedAt:   now,
		}); err != nil {
			return err
		}
		return s.transitionRepo.AppendTransition(txCtx, models.StateTransition{
			ID:            primitive.NewObjectID(),
			TenantID:      tenantID,
			ApplicationID: applicationID,
			From:          models.StatusApproved,
			To:            models.StatusDisbursed,
			Timestamp:     now,
			UserID:        userID,
		})
	})
	if err != nil {
		return nil, err
	}

	hintTTL := time.Duration(configs.IDEMPOTENCY_HINT_TTL_IN_HOURS) * time.Hour
	if err := s.redisStore.Set(ctx, disbursementHintKeyPrefix+requestID, applicationID.Hex(), hintTTL); err != nil {
		logger.Warn(ctx, "Failed to set idempotency hint for request %s: %v", requestID, err)
	}

	event := models.AuditEvent{
		Actor:      userID,
		Action:     consts.AuditActionDisbursed,
		EntityType: consts.AuditEntityLoanApplication,
		EntityID:   applicationID.Hex(),
		TenantID:   tenantID,
		After: map[string]interface{}{
			"requestId":     requestID,
			"accountId":     accountID.Hex(),
			"amount":        application.LoanAmount,
			"totalInterest": totalInterest,
			"installments":  len(schedule),
		},
		CorrelationID: correlationID(ctx),
	}
	if err := s.auditPublisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish disbursement audit event for application %s: %v", applicationID.Hex(), err)
	}

	s.queueDisbursementNotification(application, details)

	return &details, nil
}

func (s *DisbursementService) queueDisbursementNotification(application *models.LoanApplication, details models.DisbursementDetails) {
	notification := models.NotificationRequest{
		RecipientEmail: application.Applicant.Email,
		RecipientName:  application.Applicant.FullName,
		TemplateKind:   consts.NotificationLoanDisbursed,
		TemplateData: map[string]string{
			"applicationId": application.ID.Hex(),
			"amount":        fmt.Sprintf("%.2f", details.Amount),
			"termMonths":    fmt.Sprintf("%d", application.TermMonths),
		},
	}

	s.workerPool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notificationService.NotifyApplicant(ctx, notification); err != nil {
			logger.Error("Failed to notify applicant %s about disbursement: %v", notification.RecipientEmail, err)
		}
	})
}

// GenerateSchedule builds a French amortization schedule: constant
// installment, declining interest, monthly due dates starting one month
// after disbursement. The final installment absorbs rounding drift so the
// principal column always sums to the loan amount exactly.
func GenerateSchedule(tenantID string, applicationID primitive.ObjectID, amount float64, termMonths int, disbursedAt time.Time) []models.RepaymentScheduleEntry {
	installment := round2(scoring.MonthlyInstallment(amount, consts.MonthlyInterestRate, termMonths))

	entries := make([]models.RepaymentScheduleEntry, 0, termMonths)
	balance := amount
	for i := 1; i <= termMonths; i++ {
		interest := round2(balance * consts.MonthlyInterestRate)
		principal := round2(installment - interest)
		if i == termMonths || principal > balance {
			principal = round2(balance)
		}
		balance = round2(balance - principal)

		entries = append(entries, models.RepaymentScheduleEntry{
			ID:                primitive.NewObjectID(),
			TenantID:          tenantID,
			ApplicationID:     applicationID,
			InstallmentNumber: i,
			DueDate:           disbursedAt.AddDate(0, i, 0),
			Principal:         principal,
			Interest:          interest,
			TotalPayment:      round2(principal + interest),
			RemainingBalance:  balance,
		})
	}
	return entries
}

// buildAccountingEntries produces the two double-entry pairs posted at
// disbursement: principal against cash, and expected interest against
// interest income.
func buildAccountingEntries(tenantID string, application *models.LoanApplication, schedule []models.RepaymentScheduleEntry, now time.Time) ([]models.AccountingEntry, float64) {
	totalInterest := 0.0
	for _, entry := range schedule {
		totalInterest += entry.Interest
	}
	totalInterest = round2(totalInterest)

	entries := []models.AccountingEntry{
		{
			ID:            primitive.NewObjectID(),
			TenantID:      tenantID,
			ApplicationID: application.ID,
			EntryNumber:   1,
			Date:          now,
			DebitAccount:  consts.AccountLoanPortfolio,
			CreditAccount: consts.AccountCash,
			Amount:        application.LoanAmount,
			Reference:     application.GUID,
		},
		{
			ID:            primitive.NewObjectID(),
			TenantID:      tenantID,
			ApplicationID: application.ID,
			EntryNumber:   2,
			Date:          now,
			DebitAccount:  consts.AccountInterestReceivable,
			CreditAccount: consts.AccountInterestIncome,
			Amount:        totalInterest,
			Reference:     application.GUID,
		},
	}
	return entries, totalInterest
}

func branchOf(application *models.LoanApplication) primitive.ObjectID {
	if application.Routing != nil {
		return application.Routing.BranchID
	}
	return primitive.NilObjectID
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
