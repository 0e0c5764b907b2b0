package consts

// Internal bookkeeping accounts for the paired accounting entries.
const (
	AccountLoanPortfolio      = "LOAN_PORTFOLIO"
	AccountCash               = "CASH"
	AccountInterestReceivable = "INTEREST_RECEIVABLE"
	AccountInterestIncome     = "INTEREST_INCOME"
)

// Ledger transaction types posted at disbursement.
const (
	LedgerTypeDisbursement  = "DISBURSEMENT"
	LedgerTypeAccountCredit = "ACCOUNT_CREDIT"
)
