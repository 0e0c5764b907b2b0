package consts

// MonthlyInterestRate is the fixed nominal monthly rate (24% annual) used
// by both the scoring debt-ratio installment and the disbursement
// amortization schedule. The two must never diverge.
const MonthlyInterestRate = 0.02

// Employment types recognized by the scoring engine.
const (
	EmploymentFormalIndefinite = "formal_indefinite"
	EmploymentFormalTemporary  = "formal_temporary"
	EmploymentBusinessOwner    = "business_owner"
	EmploymentRetiree          = "retiree"
	EmploymentIndependent      = "independent"
	EmploymentOther            = "other"
)
