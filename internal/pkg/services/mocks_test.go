package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) GetApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.LoanApplication, error) {
	args := m.Called(ctx, tenantID, applicationID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationRepo) UpdateFields(ctx context.Context, tenantID string, applicationID primitive.ObjectID, fields bson.M) (bool, error) {
	args := m.Called(ctx, tenantID, applicationID, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) FinalizeDisbursement(ctx context.Context, tenantID string, applicationID primitive.ObjectID, details models.DisbursementDetails) (bool, error) {
	args := m.Called(ctx, tenantID, applicationID, details)
	return args.Bool(0), args.Error(1)
}

type MockTransitionRepo struct {
	mock.Mock
}

func (m *MockTransitionRepo) AppendTransition(ctx context.Context, transition models.StateTransition) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

func (m *MockTransitionRepo) ListTransitions(ctx context.Context, tenantID string, applicationID primitive.ObjectID) ([]models.StateTransition, error) {
	args := m.Called(ctx, tenantID, applicationID)
	if args.Get(0) != nil {
		return args.Get(0).([]models.StateTransition), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBranchRepo struct {
	mock.Mock
}

func (m *MockBranchRepo) GetBranch(ctx context.Context, tenantID string, branchID primitive.ObjectID) (*models.Branch, error) {
	args := m.Called(ctx, tenantID, branchID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBranchRepo) HighestPriorityRule(ctx context.Context, tenantID, district string) (*models.RoutingRule, error) {
	args := m.Called(ctx, tenantID, district)
	if args.Get(0) != nil {
		return args.Get(0).(*models.RoutingRule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBranchRepo) ActiveBranchByDistrict(ctx context.Context, tenantID, district string) (*models.Branch, error) {
	args := m.Called(ctx, tenantID, district)
	if args.Get(0) != nil {
		return args.Get(0).(*models.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBranchRepo) AnyActiveBranch(ctx context.Context, tenantID string) (*models.Branch, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAgentRepo struct {
	mock.Mock
}

func (m *MockAgentRepo) GetAgent(ctx context.Context, tenantID string, agentID primitive.ObjectID) (*models.Agent, error) {
	args := m.Called(ctx, tenantID, agentID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentRepo) EligibleAgentsByLoad(ctx context.Context, tenantID string, branchID primitive.ObjectID) ([]models.Agent, error) {
	args := m.Called(ctx, tenantID, branchID)
	if args.Get(0) != nil {
		return args.Get(0).([]models.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentRepo) TryAcquireSlot(ctx context.Context, tenantID string, agentID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, tenantID, agentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAgentRepo) DecrementLoad(ctx context.Context, tenantID string, agentID primitive.ObjectID) error {
	args := m.Called(ctx, tenantID, agentID)
	return args.Error(0)
}

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) GetAccount(ctx context.Context, tenantID string, accountID primitive.ObjectID) (*models.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepo) CreditBalance(ctx context.Context, tenantID string, accountID primitive.ObjectID, amount float64) error {
	args := m.Called(ctx, tenantID, accountID, amount)
	return args.Error(0)
}

type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) InsertEntries(ctx context.Context, entries []models.RepaymentScheduleEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockAccountingRepo struct {
	mock.Mock
}

func (m *MockAccountingRepo) InsertEntries(ctx context.Context, entries []models.AccountingEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) PostTransaction(ctx context.Context, transaction models.LedgerTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

type MockDisbursementRepo struct {
	mock.Mock
}

func (m *MockDisbursementRepo) FindByRequestID(ctx context.Context, requestID string) (*models.DisbursementRecord, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.DisbursementRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDisbursementRepo) CreateRecord(ctx context.Context, record models.DisbursementRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockTenantSettingsRepo struct {
	mock.Mock
}

func (m *MockTenantSettingsRepo) GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.TenantSettings), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) PublishAuditEvent(ctx context.Context, event models.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyApplicant(ctx context.Context, notification models.NotificationRequest) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockRedisStore struct {
	mock.Mock
}

func (m *MockRedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockRedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// MockTxRunner executes the transaction body directly, no session needed.
type MockTxRunner struct {
	mock.Mock
}

func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

func testApplication(status models.ApplicationStatus) *models.LoanApplication {
	now := time.Now().UTC()
	return &models.LoanApplication{
		ID:       primitive.NewObjectID(),
		TenantID: "tenant-a",
		GUID:     "d8e5a0f0-1234-4cde-9f00-000000000001",
		Applicant: models.ApplicantSnapshot{
			FullName:         "Maria Quispe",
			DocumentID:       "45678901",
			Email:            "maria.quispe@example.com",
			Phone:            "+51987654321",
			District:         "San Juan de Lurigancho",
			MonthlyIncome:    3000,
			CurrentDebts:     100,
			YearsEmployed:    5,
			MonthsEmployed:   2,
			EmploymentType:   "formal_indefinite",
			HasCreditHistory: true,
			HasBankAccount:   true,
		},
		LoanAmount: 5000,
		TermMonths: 12,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
