package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/utils/worker"
)

type disbursementFixture struct {
	service          *DisbursementService
	applicationRepo  *MockApplicationRepo
	transitionRepo   *MockTransitionRepo
	accountRepo      *MockAccountRepo
	scheduleRepo     *MockScheduleRepo
	accountingRepo   *MockAccountingRepo
	ledgerRepo       *MockLedgerRepo
	disbursementRepo *MockDisbursementRepo
	redisStore       *MockRedisStore
	auditPublisher   *MockAuditPublisher
	notifications    *MockNotificationService
	txRunner         *MockTxRunner
	workerPool       *worker.WorkerPool
}

func newDisbursementFixture() disbursementFixture {
	f := disbursementFixture{
		applicationRepo:  new(MockApplicationRepo),
		transitionRepo:   new(MockTransitionRepo),
		accountRepo:      new(MockAccountRepo),
		scheduleRepo:     new(MockScheduleRepo),
		accountingRepo:   new(MockAccountingRepo),
		ledgerRepo:       new(MockLedgerRepo),
		disbursementRepo: new(MockDisbursementRepo),
		redisStore:       new(MockRedisStore),
		auditPublisher:   new(MockAuditPublisher),
		notifications:    new(MockNotificationService),
		txRunner:         new(MockTxRunner),
		workerPool:       worker.NewWorkerPool(1),
	}
	f.notifications.On("NotifyApplicant", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.service = NewDisbursementService(f.workerPool, f.txRunner, f.applicationRepo, f.transitionRepo, f.accountRepo, f.scheduleRepo, f.accountingRepo, f.ledgerRepo, f.disbursementRepo, f.redisStore, f.auditPublisher, f.notifications)
	return f
}

func activeAccount(documentID string) *models.Account {
	return &models.Account{
		ID:                  primitive.NewObjectID(),
		TenantID:            "tenant-a",
		ApplicantDocumentID: documentID,
		Status:              models.AccountStatusActive,
		Balance:             120.50,
	}
}

func TestDisburseHappyPath(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()

	application := testApplication(models.StatusApproved)
	application.Routing = &models.RoutingInfo{BranchID: primitive.NewObjectID(), District: "Comas"}
	account := activeAccount(application.Applicant.DocumentID)

	f.redisStore.On("Get", mock.Anything, "disb:req:req-001").Return("", false, nil)
	f.disbursementRepo.On("FindByRequestID", mock.Anything, "req-001").Return(nil, nil)
	f.applicationRepo.On("GetApplication", mock.Anything, "tenant-a", application.ID).Return(application, nil)
	f.accountRepo.On("GetAccount", mock.Anything, "tenant-a", account.ID).Return(account, nil)
	f.txRunner.On("RunInTransaction", mock.Anything).Return(nil)
	f.scheduleRepo.On("InsertEntries", mock.Anything, mock.MatchedBy(func(entries []models.RepaymentScheduleEntry) bool {
		return len(entries) == application.TermMonths
	})).Return(nil)
	f.accountingRepo.On("InsertEntries", mock.Anything, mock.MatchedBy(func(entries []models.AccountingEntry) bool {
		return len(entries) == 2 &&
			entries[0].DebitAccount == consts.AccountLoanPortfolio &&
			entries[0].CreditAccount == consts.AccountCash &&
			entries[0].Amount == application.LoanAmount &&
			entries[1].DebitAccount == consts.AccountInterestReceivable &&
			entries[1].CreditAccount == consts.AccountInterestIncome
	})).Return(nil)
	f.ledgerRepo.On("PostTransaction", mock.Anything, mock.Anything).Return(nil).Twice()
	f.accountRepo.On("CreditBalance", mock.Anything, "tenant-a", account.ID, application.LoanAmount).Return(nil)
	f.applicationRepo.On("FinalizeDisbursement", mock.Anything, "tenant-a", application.ID, mock.Anything).Return(true, nil)
	f.disbursementRepo.On("CreateRecord", mock.Anything, mock.MatchedBy(func(record models.DisbursementRecord) bool {
		return record.RequestID == "req-001" && record.Amount == application.LoanAmount
	})).Return(nil)
	f.transitionRepo.On("AppendTransition", mock.Anything, mock.MatchedBy(func(tr models.StateTransition) bool {
		return tr.From == models.StatusApproved && tr.To == models.StatusDisbursed
	})).Return(nil)
	f.redisStore.On("Set", mock.Anything, "disb:req:req-001", application.ID.Hex(), mock.Anything).Return(nil)
	f.auditPublisher.On("PublishAuditEvent", mock.Anything, mock.Anything).Return(nil)

	details, err := f.service.Disburse(context.Background(), "tenant-a", application.ID, "req-001", account.ID, "treasury-1")

	assert.NoError(t, err)
	assert.Equal(t, application.LoanAmount, details.Amount)
	assert.Equal(t, application.Routing.BranchID, details.BranchID)
	f.scheduleRepo.AssertExpectations(t)
	f.accountingRepo.AssertExpectations(t)
	f.disbursementRepo.AssertExpectations(t)
}

func TestDisburseDuplicateRequestByHint(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()

	f.redisStore.On("Get", mock.Anything, "disb:req:req-002").Return("abc", true, nil)

	_, err := f.service.Disburse(context.Background(), "tenant-a", primitive.NewObjectID(), "req-002", primitive.NewObjectID(), "treasury-1")

	assert.ErrorIs(t, err, consts.ErrorDuplicateRequest)
	f.disbursementRepo.AssertNotCalled(t, "FindByRequestID", mock.Anything, mock.Anything)
}

func TestDisburseDuplicateRequestByDurableRecord(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()

	// cache miss proves nothing, the durable record decides
	f.redisStore.On("Get", mock.Anything, "disb:req:req-003").Return("", false, nil)
	f.disbursementRepo.On("FindByRequestID", mock.Anything, "req-003").Return(&models.DisbursementRecord{RequestID: "req-003"}, nil)

	_, err := f.service.Disburse(context.Background(), "tenant-a", primitive.NewObjectID(), "req-003", primitive.NewObjectID(), "treasury-1")

	assert.ErrorIs(t, err, consts.ErrorDuplicateRequest)
	f.applicationRepo.AssertNotCalled(t, "GetApplication", mock.Anything, mock.Anything, mock.Anything)
}

func TestDisburseRequiresApprovedStatus(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()

	for _, status := range []models.ApplicationStatus{
		models.StatusPending, models.StatusReceived, models.StatusRouted,
		models.StatusInReview, models.StatusDecision, models.StatusObserved,
		models.StatusRejected,
	} {
		application := testApplication(status)
		f.redisStore.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
		f.disbursementRepo.On("FindByRequestID", mock.Anything, mock.Anything).Return(nil, nil)
		f.applicationRepo.On("GetApplication", mock.Anything, "tenant-a", application.ID).Return(application, nil)

		_, err := f.service.Disburse(context.Background(), "tenant-a", application.ID, "req-004", primitive.NewObjectID(), "treasury-1")

		assert.ErrorIs(t, err, consts.ErrorInvalidState, "status %s", status)
	}
}

func TestDisburseAlreadyDisbursed(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()
	application := testApplication(models.StatusDisbursed)

	f.redisStore.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	f.disbursementRepo.On("FindByRequestID", mock.Anything, mock.Anything).Return(nil, nil)
	f.applicationRepo.On("GetApplication", mock.Anything, "tenant-a", application.ID).Return(application, nil)

	_, err := f.service.Disburse(context.Background(), "tenant-a", application.ID, "req-005", primitive.NewObjectID(), "treasury-1")

	assert.ErrorIs(t, err, consts.ErrorAlreadyDisbursed)
}

func TestDisburseRejectsForeignAccount(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()
	application := testApplication(models.StatusApproved)
	account := activeAccount("99999999")

	f.redisStore.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	f.disbursementRepo.On("FindByRequestID", mock.Anything, mock.Anything).Return(nil, nil)
	f.applicationRepo.On("GetApplication", mock.Anything, "tenant-a", application.ID).Return(application, nil)
	f.accountRepo.On("GetAccount", mock.Anything, "tenant-a", account.ID).Return(account, nil)

	_, err := f.service.Disburse(context.Background(), "tenant-a", application.ID, "req-006", account.ID, "treasury-1")

	assert.ErrorIs(t, err, consts.ErrorInvalidAccount)
}

func TestDisburseRejectsFrozenAccount(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()
	application := testApplication(models.StatusApproved)
	account := activeAccount(application.Applicant.DocumentID)
	account.Status = models.AccountStatusFrozen

	f.redisStore.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	f.disbursementRepo.On("FindByRequestID", mock.Anything, mock.Anything).Return(nil, nil)
	f.applicationRepo.On("GetApplication", mock.Anything, "tenant-a", application.ID).Return(application, nil)
	f.accountRepo.On("GetAccount", mock.Anything, "tenant-a", account.ID).Return(account, nil)

	_, err := f.service.Disburse(context.Background(), "tenant-a", application.ID, "req-007", account.ID, "treasury-1")

	assert.ErrorIs(t, err, consts.ErrorInvalidAccount)
}

func TestDisburseRejectsInvalidTerms(t *testing.T) {
	f := newDisbursementFixture()
	defer f.workerPool.Stop()
	application := testApplication(models.StatusApproved)
	application.TermMonths = 0

	f.redisStore.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	f.disbursementRepo.On("FindByRequestID", mock.Anything, mock.Anything).Return(nil, nil)
	f.applicationRepo.On("GetApplication", mock.Anything, "tenant-a", application.ID).Return(application, nil)

	_, err := f.service.Disburse(context.Background(), "tenant-a", application.ID, "req-008", primitive.NewObjectID(), "treasury-1")

	assert.ErrorIs(t, err, consts.ErrorInvalidLoanTerms)
}

func TestGenerateSchedulePrincipalSumsToLoanAmount(t *testing.T) {
	amounts := []float64{5000, 1234.56, 800, 10000}
	terms := []int{6, 12, 18, 24}

	for _, amount := range amounts {
		for _, term := range terms {
			entries := GenerateSchedule("tenant-a", primitive.NewObjectID(), amount, term, time.Now().UTC())

			assert.Len(t, entries, term)

			principalSum := 0.0
			for _, entry := range entries {
				principalSum += entry.Principal
				assert.GreaterOrEqual(t, entry.Interest, 0.0)
			}
			assert.InDelta(t, amount, principalSum, 0.01, "amount %.2f term %d", amount, term)
			assert.Equal(t, 0.0, entries[term-1].RemainingBalance)
		}
	}
}

func TestGenerateScheduleDecliningInterest(t *testing.T) {
	entries := GenerateSchedule("tenant-a", primitive.NewObjectID(), 5000, 12, time.Now().UTC())

	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i].Interest, entries[i-1].Interest)
		assert.Greater(t, entries[i].Principal, entries[i-1].Principal)
	}

	// constant installment except for the rounding clamp on the last one
	for i := 0; i < len(entries)-1; i++ {
		assert.InDelta(t, entries[0].TotalPayment, entries[i].TotalPayment, 0.01)
	}
	assert.InDelta(t, 5000*0.02, entries[0].Interest, 0.01)
}

func TestGenerateScheduleDueDatesAreMonthly(t *testing.T) {
	disbursedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	entries := GenerateSchedule("tenant-a", primitive.NewObjectID(), 1000, 3, disbursedAt)

	assert.Equal(t, disbursedAt.AddDate(0, 1, 0), entries[0].DueDate)
	assert.Equal(t, disbursedAt.AddDate(0, 2, 0), entries[1].DueDate)
	assert.Equal(t, disbursedAt.AddDate(0, 3, 0), entries[2].DueDate)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 472.80, round2(472.8012))
	assert.Equal(t, 0.01, round2(0.005))
	assert.True(t, math.Abs(round2(123.456)-123.46) < 1e-9)
}
