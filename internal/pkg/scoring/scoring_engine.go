package scoring

import (
	"math"
	"sort"
	"time"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

// ModelVersion is stamped on every scoring result.
const ModelVersion = "1.4.0"

// Sub-score weights, summing to 1.0.
const (
	WeightIncome         = 0.30
	WeightDebt           = 0.25
	WeightTenure         = 0.20
	WeightEmploymentType = 0.15
	WeightCreditHistory  = 0.10
)

// BandThresholds classify the rounded weighted total. Scores below C
// fall into band D.
type BandThresholds struct {
	A int
	B int
	C int
}

var DefaultBandThresholds = BandThresholds{A: 800, B: 600, C: 400}

// ThresholdsForTenant merges per-tenant overrides over the defaults.
func ThresholdsForTenant(settings *models.TenantSettings) BandThresholds {
	thresholds := DefaultBandThresholds
	if settings == nil {
		return thresholds
	}
	if settings.BandAThreshold > 0 {
		thresholds.A = settings.BandAThreshold
	}
	if settings.BandBThreshold > 0 {
		thresholds.B = settings.BandBThreshold
	}
	if settings.BandCThreshold > 0 {
		thresholds.C = settings.BandCThreshold
	}
	return thresholds
}

// Engine computes risk scores. It is pure, deterministic for a given
// input and never touches storage.
type Engine struct {
	thresholds BandThresholds
}

func NewEngine(thresholds BandThresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// CalculateScore maps the applicant's financial snapshot to a numeric
// score, a risk band and up to three prioritized reason codes.
func (e *Engine) CalculateScore(application *models.LoanApplication) models.ScoringResult {

	breakdown := models.ScoreBreakdown{
		IncomeScore:         incomeScore(application.Applicant.MonthlyIncome, application.LoanAmount),
		DebtScore:           debtScore(application.Applicant, application.LoanAmount, application.TermMonths),
		TenureScore:         tenureScore(application.Applicant.TotalMonthsEmployed()),
		EmploymentTypeScore: employmentTypeScore(application.Applicant.EmploymentType),
		CreditHistoryScore:  creditHistoryScore(application.Applicant.HasBankAccount, application.Applicant.HasCreditHistory),
	}

	total := breakdown.IncomeScore*WeightIncome +
		breakdown.DebtScore*WeightDebt +
		breakdown.TenureScore*WeightTenure +
		breakdown.EmploymentTypeScore*WeightEmploymentType +
		breakdown.CreditHistoryScore*WeightCreditHistory

	score := int(math.Round(total))

	return models.ScoringResult{
		Score:        score,
		Band:         e.classifyBand(score),
		ReasonCodes:  reasonCodes(breakdown),
		ModelVersion: ModelVersion,
		CalculatedAt: time.Now().UTC(),
		Details:      breakdown,
	}
}

func (e *Engine) classifyBand(score int) string {
	switch {
	case score >= e.thresholds.A:
		return "A"
	case score >= e.thresholds.B:
		return "B"
	case score >= e.thresholds.C:
		return "C"
	default:
		return "D"
	}
}

// MonthlyInstallment is the fixed annuity payment for principal p over n
// months at monthly rate r. Shared with the disbursement schedule so the
// debt ratio and the generated schedule never disagree.
func MonthlyInstallment(p float64, r float64, n int) float64 {
	if p <= 0 || n <= 0 {
		return 0
	}
	if r == 0 {
		return p / float64(n)
	}
	factor := math.Pow(1+r, float64(n))
	return p * r * factor / (factor - 1)
}

func incomeScore(monthlyIncome, loanAmount float64) float64 {
	if loanAmount <= 0 {
		return 200
	}
	ratio := monthlyIncome / loanAmount
	switch {
	case ratio >= 0.5:
		return 1000
	case ratio >= 0.3:
		return 800
	case ratio >= 0.2:
		return 600
	case ratio >= 0.15:
		return 400
	default:
		return 200
	}
}

func debtScore(applicant models.ApplicantSnapshot, loanAmount float64, termMonths int) float64 {
	if applicant.MonthlyIncome <= 0 {
		return 200
	}
	installment := MonthlyInstallment(loanAmount, consts.MonthlyInterestRate, termMonths)
	ratio := (applicant.CurrentDebts + installment) / applicant.MonthlyIncome
	switch {
	case ratio <= 0.20:
		return 1000
	case ratio <= 0.30:
		return 800
	case ratio <= 0.40:
		return 600
	case ratio <= 0.50:
		return 400
	default:
		return 200
	}
}

func tenureScore(monthsEmployed int) float64 {
	switch {
	case monthsEmployed >= 60:
		return 1000
	case monthsEmployed >= 36:
		return 700
	case monthsEmployed >= 24:
		return 500
	case monthsEmployed >= 12:
		return 300
	default:
		return 200
	}
}

func employmentTypeScore(employmentType string) float64 {
	switch employmentType {
	case consts.EmploymentFormalIndefinite:
		return 1000
	case consts.EmploymentFormalTemporary:
		return 800
	case consts.EmploymentBusinessOwner:
		return 700
	case consts.EmploymentRetiree:
		return 600
	case consts.EmploymentIndependent:
		return 500
	default:
		return 300
	}
}

func creditHistoryScore(hasBankAccount, hasCreditHistory bool) float64 {
	switch {
	case hasBankAccount && hasCreditHistory:
		return 1000
	case hasCreditHistory:
		return 700
	case hasBankAccount:
		return 500
	default:
		return 300
	}
}

func tierFor(subScore float64) string {
	switch {
	case subScore >= 800:
		return TierPositive
	case subScore >= 600:
		return TierWarning
	default:
		return TierNegative
	}
}

func reasonCodes(breakdown models.ScoreBreakdown) []string {
	factors := []struct {
		category string
		value    float64
	}{
		{CategoryIncome, breakdown.IncomeScore},
		{CategoryDebt, breakdown.DebtScore},
		{CategoryTenure, breakdown.TenureScore},
		{CategoryEmploymentType, breakdown.EmploymentTypeScore},
		{CategoryCreditHistory, breakdown.CreditHistoryScore},
	}

	var entries []ReasonCodeEntry
	for _, factor := range factors {
		if entry, ok := lookupReasonCode(factor.category, tierFor(factor.value)); ok {
			entries = append(entries, entry)
		}
	}

	// Table order already encodes category order, the stable sort keeps
	// it as the tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})

	codes := make([]string, 0, MaxReasonCodes)
	for _, entry := range entries {
		if len(codes) == MaxReasonCodes {
			break
		}
		codes = append(codes, entry.Code)
	}
	return codes
}
