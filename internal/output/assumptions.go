package output

// DefaultAssumptions lists key modeling assumptions rendered when a comparison carries none.
var DefaultAssumptions = []string{
	"Savings account rate (Scenario A): 0.00% annually, compounded monthly",
	"Investment returns (Scenario C): each inflow compounds monthly at its own APR",
	"Loans are combined into one loan at the principal-weighted average rate",
	"Dates are converted to months using 30.44 days per month",
	"No taxes, fees or inflation are modeled",
}

func assumptionsOf(assumptions []string) []string {
	if len(assumptions) == 0 {
		return DefaultAssumptions
	}
	return assumptions
}
