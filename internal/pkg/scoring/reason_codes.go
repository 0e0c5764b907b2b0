package scoring

// Scoring factor categories, in fixed evaluation order.
const (
	CategoryIncome         = "income"
	CategoryDebt           = "debt"
	CategoryTenure         = "tenure"
	CategoryEmploymentType = "employment_type"
	CategoryCreditHistory  = "credit_history"
)

// Code tiers derived from a sub-score.
const (
	TierPositive = "positive"
	TierWarning  = "warning"
	TierNegative = "negative"
)

// ReasonCodeEntry is one row of the fixed code table. Priority decides
// which codes survive the cap of three, lower number wins.
type ReasonCodeEntry struct {
	Code     string
	Category string
	Tier     string
	Priority int
}

// ReasonCodeTable is the full 20-entry table: five categories times
// three tiers, plus five validation codes reserved for the intake layer.
// Negative codes always outrank warnings, warnings outrank positives.
// Within the positive tier the priorities favor the factors reviewers
// surface to applicants (income, employment type, credit history) over
// the derived debt and tenure ratios.
var ReasonCodeTable = []ReasonCodeEntry{
	{Code: "RC01", Category: CategoryIncome, Tier: TierPositive, Priority: 11},
	{Code: "RC02", Category: CategoryDebt, Tier: TierPositive, Priority: 14},
	{Code: "RC03", Category: CategoryTenure, Tier: TierPositive, Priority: 15},
	{Code: "RC04", Category: CategoryEmploymentType, Tier: TierPositive, Priority: 12},
	{Code: "RC05", Category: CategoryCreditHistory, Tier: TierPositive, Priority: 13},

	{Code: "RC06", Category: CategoryIncome, Tier: TierWarning, Priority: 6},
	{Code: "RC07", Category: CategoryDebt, Tier: TierWarning, Priority: 7},
	{Code: "RC08", Category: CategoryTenure, Tier: TierWarning, Priority: 8},
	{Code: "RC09", Category: CategoryEmploymentType, Tier: TierWarning, Priority: 9},
	{Code: "RC10", Category: CategoryCreditHistory, Tier: TierWarning, Priority: 10},

	{Code: "RC11", Category: CategoryIncome, Tier: TierNegative, Priority: 1},
	{Code: "RC12", Category: CategoryDebt, Tier: TierNegative, Priority: 2},
	{Code: "RC13", Category: CategoryTenure, Tier: TierNegative, Priority: 3},
	{Code: "RC14", Category: CategoryEmploymentType, Tier: TierNegative, Priority: 4},
	{Code: "RC15", Category: CategoryCreditHistory, Tier: TierNegative, Priority: 5},

	// Validation codes, emitted by the intake layer, never by the engine.
	{Code: "RC16", Category: CategoryIncome, Tier: "validation", Priority: 16},
	{Code: "RC17", Category: CategoryDebt, Tier: "validation", Priority: 17},
	{Code: "RC18", Category: CategoryTenure, Tier: "validation", Priority: 18},
	{Code: "RC19", Category: CategoryEmploymentType, Tier: "validation", Priority: 19},
	{Code: "RC20", Category: CategoryCreditHistory, Tier: "validation", Priority: 20},
}

// MaxReasonCodes caps how many codes a scoring result carries.
const MaxReasonCodes = 3

func lookupReasonCode(category, tier string) (ReasonCodeEntry, bool) {
	for _, entry := range ReasonCodeTable {
		if entry.Category == category && entry.Tier == tier {
			return entry, true
		}
	}
	return ReasonCodeEntry{}, false
}
