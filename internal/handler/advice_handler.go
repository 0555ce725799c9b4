package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/mint/mint-backend/internal/domain"
	"github.com/dafibh/mint/mint-backend/internal/middleware"
	"github.com/dafibh/mint/mint-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// User-facing messages
const (
	PageTitle    = "Mint: Intelligent Investment Advisor"
	PageSubtitle = "buildspace n&w s5 | gaudamire."
	AboutText    = "This is an AI-powered investment advisor. It provides personalized investment strategies based on your financial situation and goals."
	Disclaimer   = "Disclaimer: This advice is generated by an AI model and should not be considered as professional financial advice. Please consult with a qualified financial advisor before making any investment decisions."

	MsgInvalidAmounts = "Please enter valid income and expense amounts."
	MsgAdviceFailed   = "An error occurred while generating advice. Please try again later."
	MsgPending        = "Your previous request is still being processed. Please wait for it to finish."
)

const indexTemplate = "index.html"

// AdviceHandler serves the advisor page and handles advice submissions
type AdviceHandler struct {
	adviceService *service.AdviceService
	markdown      *MarkdownRenderer
}

// NewAdviceHandler creates a new AdviceHandler
func NewAdviceHandler(adviceService *service.AdviceService, markdown *MarkdownRenderer) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService, markdown: markdown}
}

// AdviceRequest represents the JSON advice request
type AdviceRequest struct {
	Income             decimal.Decimal `json:"income" swaggertype:"number"`
	Expenses           decimal.Decimal `json:"expenses" swaggertype:"number"`
	CurrentInvestments string          `json:"currentInvestments"`
	RiskTolerance      *int            `json:"riskTolerance"`
	Goals              string          `json:"goals"`
}

// AdviceResponse represents the JSON advice response
type AdviceResponse struct {
	Advice      string    `json:"advice"`
	Savings     string    `json:"savings"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generatedAt"`
	Disclaimer  string    `json:"disclaimer"`
}

// formValues echoes submitted input back into the page
type formValues struct {
	Income             string
	Expenses           string
	CurrentInvestments string
	RiskTolerance      int
	Goals              string
}

// pageData is the view model for index.html
type pageData struct {
	Title      string
	Subtitle   string
	About      string
	Step       int
	MinRisk    int
	MaxRisk    int
	Form       formValues
	Error      string
	Advice     template.HTML
	Disclaimer string
}

func newPage(form formValues) pageData {
	return pageData{
		Title:    PageTitle,
		Subtitle: PageSubtitle,
		About:    AboutText,
		Step:     domain.AmountStep,
		MinRisk:  domain.MinRiskTolerance,
		MaxRisk:  domain.MaxRiskTolerance,
		Form:     form,
	}
}

// Index handles GET /
func (h *AdviceHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, indexTemplate, newPage(formValues{
		Income:        "0",
		Expenses:      "0",
		RiskTolerance: domain.DefaultRiskTolerance,
	}))
}

// SubmitForm handles POST /advice
func (h *AdviceHandler) SubmitForm(c echo.Context) error {
	form := formValues{
		Income:             strings.TrimSpace(c.FormValue("income")),
		Expenses:           strings.TrimSpace(c.FormValue("expenses")),
		CurrentInvestments: c.FormValue("currentInvestments"),
		RiskTolerance:      parseRiskTolerance(c.FormValue("riskTolerance")),
		Goals:              c.FormValue("goals"),
	}
	page := newPage(form)

	income, incomeErr := parseAmount(form.Income)
	expenses, expensesErr := parseAmount(form.Expenses)
	profile := domain.FinancialProfile{
		Income:             income,
		Expenses:           expenses,
		CurrentInvestments: form.CurrentInvestments,
		RiskTolerance:      form.RiskTolerance,
		Goals:              form.Goals,
	}
	if incomeErr != nil || expensesErr != nil || profile.Validate() != nil {
		page.Error = MsgInvalidAmounts
		return c.Render(http.StatusBadRequest, indexTemplate, page)
	}

	advice, err := h.adviceService.Generate(c.Request().Context(), middleware.GetSessionID(c), profile)
	if err != nil {
		status, msg := adviceErrorStatus(err)
		page.Error = msg
		return c.Render(status, indexTemplate, page)
	}

	rendered, err := h.markdown.Render(advice.Markdown)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render investment strategy")
		page.Error = MsgAdviceFailed
		return c.Render(http.StatusInternalServerError, indexTemplate, page)
	}

	page.Advice = rendered
	page.Disclaimer = Disclaimer
	return c.Render(http.StatusOK, indexTemplate, page)
}

// CreateAdvice godoc
// @Summary Generate an investment strategy
// @Description Builds the strategy prompt from the financial profile and returns the model's markdown table
// @Tags advice
// @Accept json
// @Produce json
// @Param request body AdviceRequest true "Financial profile"
// @Success 200 {object} AdviceResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /advice [post]
func (h *AdviceHandler) CreateAdvice(c echo.Context) error {
	var req AdviceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var errs []ValidationError
	if !req.Income.IsPositive() {
		errs = append(errs, ValidationError{Field: "income", Message: "Income must be greater than zero"})
	}
	if !req.Expenses.IsPositive() {
		errs = append(errs, ValidationError{Field: "expenses", Message: "Expenses must be greater than zero"})
	}
	if len(errs) > 0 {
		return NewValidationError(c, MsgInvalidAmounts, errs)
	}

	riskTolerance := domain.DefaultRiskTolerance
	if req.RiskTolerance != nil {
		riskTolerance = domain.ClampRiskTolerance(*req.RiskTolerance)
	}

	advice, err := h.adviceService.Generate(c.Request().Context(), middleware.GetSessionID(c), domain.FinancialProfile{
		Income:             req.Income,
		Expenses:           req.Expenses,
		CurrentInvestments: req.CurrentInvestments,
		RiskTolerance:      riskTolerance,
		Goals:              req.Goals,
	})
	if err != nil {
		switch status, msg := adviceErrorStatus(err); status {
		case http.StatusBadRequest:
			return NewValidationError(c, msg, nil)
		case http.StatusConflict:
			return NewConflictError(c, msg)
		default:
			return NewUpstreamError(c, msg)
		}
	}

	return c.JSON(http.StatusOK, AdviceResponse{
		Advice:      advice.Markdown,
		Savings:     advice.Savings.StringFixed(2),
		Model:       advice.Model,
		GeneratedAt: advice.GeneratedAt,
		Disclaimer:  Disclaimer,
	})
}

// adviceErrorStatus maps a Generate error to an HTTP status and a safe message.
// The underlying cause has already been logged by the service.
func adviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmounts):
		return http.StatusBadRequest, MsgInvalidAmounts
	case errors.Is(err, domain.ErrRequestInFlight):
		return http.StatusConflict, MsgPending
	default:
		return http.StatusBadGateway, MsgAdviceFailed
	}
}

// parseAmount accepts an empty value as zero and rejects negatives
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return amount, nil
}

// parseRiskTolerance treats a missing or non-numeric value as the default
func parseRiskTolerance(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.DefaultRiskTolerance
	}
	return domain.ClampRiskTolerance(v)
}
