package service

import (
	"fmt"
	"strings"

	"github.com/dafibh/mint/mint-backend/internal/domain"
)

// SystemPrompt is the fixed role given to the model
const SystemPrompt = "You are a helpful financial advisor."

const strategyTemplate = `Given the following financial information:
Monthly Income: $%[1]s
Monthly Expenses: $%[2]s
Monthly Savings: $%[3]s
Current Investments: %[4]s
Risk Tolerance (1-10): %[5]d
Investment Goals: %[6]s

Please generate an investment strategy table in the following format:

## Strategy Overview

| Investment | Amount |
|------------|--------|
| [Investment 1] | $X.XX |
| [Investment 2] | $X.XX |
| [Investment 3] | $X.XX |
| [Investment 4] | $X.XX |
| [Investment 5] | $X.XX |
| [Investment 6] | $X.XX |
| [Investment 7] | $X.XX |
| | **Total** | **$Y.YY** |

Guidelines:
1. Choose appropriate investments based on the user's risk tolerance, goals, and current investments.
2. Include a mix of ETFs, individual stocks, and other investment vehicles as appropriate.
3. Consider including categories like "Emergency Fund" or "High-Yield Savings" if appropriate.
4. The number of investments can vary, but aim for 5-8 distinct categories.
5. Allocate the funds across the investments based on the risk tolerance and goals provided.
6. The total must exactly equal $%[7]s, which is the difference between income and expenses. Display the actual calculated total, not the word "Total". ALL THE ROWS SHOULD ADD UP TO THE ACTUAL TOTAL.
7. Do not include any text before or after the table. Only return the table itself.
8. When suggesting stocks, list each stock ticker separately with its specific investment amount.
9. For ETFs, you may group them or list individually based on importance.
10. Ensure all amounts add up correctly and match the total savings amount.`

// BuildStrategyPrompt renders the investment strategy prompt for a profile.
// Amounts are rendered in their shortest exact form ($5000, $5000.5); the
// target total in guideline 6 always carries two decimals.
func BuildStrategyPrompt(p domain.FinancialProfile) string {
	savings := p.Savings()
	return fmt.Sprintf(strategyTemplate,
		p.Income.String(),
		p.Expenses.String(),
		savings.String(),
		strings.TrimSpace(p.CurrentInvestments),
		p.RiskTolerance,
		strings.TrimSpace(p.Goals),
		savings.StringFixed(2),
	)
}
