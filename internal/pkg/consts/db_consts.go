package consts

const (
	LoanApplicationsCollection     = "loan_applications"
	StateTransitionsCollection     = "state_transitions"
	BranchesCollection             = "branches"
	AgentsCollection               = "agents"
	RoutingRulesCollection         = "routing_rules"
	AccountsCollection             = "accounts"
	RepaymentScheduleCollection    = "repayment_schedule"
	AccountingEntriesCollection    = "accounting_entries"
	LedgerTransactionsCollection   = "ledger_transactions"
	DisbursementRequestsCollection = "disbursement_requests"
	TenantSettingsCollection       = "tenant_settings"
)
