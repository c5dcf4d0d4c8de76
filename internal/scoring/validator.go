package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// CheckResult is the outcome of one scored check against a candidate API.
type CheckResult struct {
	Name          string         `json:"test_name"`
	Passed        bool           `json:"passed"`
	Score         float64        `json:"score"`
	MaxScore      float64        `json:"max_score"`
	Message       string         `json:"message"`
	Details       map[string]any `json:"details"`
	ExecutionTime float64        `json:"execution_time"`
}

// Summary aggregates a validation run.
type Summary struct {
	ChecksRun          int     `json:"tests_run"`
	ChecksPassed       int     `json:"tests_passed"`
	TotalExecutionTime float64 `json:"total_execution_time"`
	Grade              string  `json:"grade"`
}

// Report is the complete validation report for a candidate API.
type Report struct {
	CandidateURL  string        `json:"candidate_url"`
	TotalScore    float64       `json:"total_score"`
	MaxTotalScore float64       `json:"max_total_score"`
	Results       []CheckResult `json:"test_results"`
	Summary       Summary       `json:"summary"`
	Timestamp     string        `json:"timestamp"`
}

// Passing reports whether the run meets the acceptance bar (grade C or
// better).
func (r *Report) Passing() bool {
	switch r.Summary.Grade {
	case "A", "B", "C":
		return true
	}
	return false
}

// Validator scores a candidate consumer API against the corpus served by the
// reference API. It probes the candidate's user-facing endpoints and grades
// availability, response structure and latency.
type Validator struct {
	candidateURL string
	sourceURL    string
	client       *http.Client
	log          zerolog.Logger
	accounts     []string
}

// New creates a Validator. candidateURL is the API under evaluation;
// sourceURL is the reference corpus API used to discover test accounts.
func New(candidateURL, sourceURL string, log zerolog.Logger) *Validator {
	return &Validator{
		candidateURL: strings.TrimRight(candidateURL, "/"),
		sourceURL:    strings.TrimRight(sourceURL, "/"),
		client:       &http.Client{Timeout: 30 * time.Second},
		log:          log,
	}
}

// LoadFixtures fetches test accounts from the reference API, retrying with
// exponential backoff while the reference is still starting up. At most the
// first ten accounts are used.
func (v *Validator) LoadFixtures(ctx context.Context) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.sourceURL+"/accounts", nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := v.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("reference api returned HTTP %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		accounts, err := parseAccounts(body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if len(accounts) > 10 {
			accounts = accounts[:10]
		}
		v.accounts = accounts
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return fmt.Errorf("loading test accounts: %w", err)
	}

	v.log.Info().Int("accounts", len(v.accounts)).Msg("loaded test accounts")
	return nil
}

// parseAccounts accepts both a bare {"accounts": [...]} body and the
// enveloped {"data": {"accounts": [...]}} form.
func parseAccounts(body []byte) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding accounts response: %w", err)
	}
	if data, ok := raw["data"]; ok {
		inner := map[string]json.RawMessage{}
		if err := json.Unmarshal(data, &inner); err == nil {
			if _, ok := inner["accounts"]; ok {
				raw = inner
			}
		}
	}
	accountsRaw, ok := raw["accounts"]
	if !ok {
		return nil, fmt.Errorf("accounts response has no accounts field")
	}
	var accounts []string
	if err := json.Unmarshal(accountsRaw, &accounts); err != nil {
		return nil, fmt.Errorf("decoding account list: %w", err)
	}
	return accounts, nil
}

// Run executes every check and assembles the report.
func (v *Validator) Run(ctx context.Context) *Report {
	checks := []func(ctx context.Context) CheckResult{
		v.checkAvailability,
		v.checkTransactions,
		v.checkBalance,
		v.checkConsistency,
		v.checkPerformance,
	}

	report := &Report{
		CandidateURL: v.candidateURL,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	for _, check := range checks {
		result := check(ctx)
		report.Results = append(report.Results, result)
		report.TotalScore += result.Score
		report.MaxTotalScore += result.MaxScore
		report.Summary.ChecksRun++
		report.Summary.TotalExecutionTime += result.ExecutionTime
		if result.Passed {
			report.Summary.ChecksPassed++
		}

		v.log.Info().
			Str("check", result.Name).
			Bool("passed", result.Passed).
			Float64("score", result.Score).
			Float64("max_score", result.MaxScore).
			Msg(result.Message)
	}

	report.Summary.Grade = grade(report.TotalScore, report.MaxTotalScore)
	return report
}

func grade(score, maxScore float64) string {
	pct := score / maxScore * 100
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}

// get issues a timed GET against the candidate API.
func (v *Validator) get(ctx context.Context, endpoint string) (*http.Response, []byte, float64, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.candidateURL+endpoint, nil)
	if err != nil {
		return nil, nil, time.Since(start).Seconds(), err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, nil, time.Since(start).Seconds(), err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp, body, time.Since(start).Seconds(), err
}

func (v *Validator) checkAvailability(ctx context.Context) CheckResult {
	const maxScore = 20.0
	start := time.Now()

	if len(v.accounts) == 0 {
		return CheckResult{Name: "Endpoint Availability", MaxScore: maxScore, Message: "No test accounts available", Details: map[string]any{}}
	}

	endpoints := []string{
		"/health",
		"/users/" + v.accounts[0] + "/transactions",
		"/users/" + v.accounts[0] + "/balance",
	}

	available := 0
	details := map[string]any{}
	for _, endpoint := range endpoints {
		resp, _, reqTime, err := v.get(ctx, endpoint)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			available++
			details[endpoint] = map[string]any{"available": true, "status": resp.StatusCode, "time": reqTime}
		} else {
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			details[endpoint] = map[string]any{"available": false, "status": status, "time": reqTime}
		}
	}

	return CheckResult{
		Name:          "Endpoint Availability",
		Passed:        available == len(endpoints),
		Score:         float64(available) / float64(len(endpoints)) * maxScore,
		MaxScore:      maxScore,
		Message:       fmt.Sprintf("Available endpoints: %d/%d", available, len(endpoints)),
		Details:       details,
		ExecutionTime: time.Since(start).Seconds(),
	}
}

func (v *Validator) checkTransactions(ctx context.Context) CheckResult {
	const maxScore = 25.0
	start := time.Now()

	if len(v.accounts) == 0 {
		return CheckResult{Name: "Transactions Endpoint", MaxScore: maxScore, Message: "No test accounts available", Details: map[string]any{}}
	}

	account := v.accounts[0]
	details := map[string]any{"account_tested": account}

	resp, body, reqTime, err := v.get(ctx, "/users/"+account+"/transactions")
	details["response_time"] = reqTime
	if err != nil {
		return CheckResult{Name: "Transactions Endpoint", MaxScore: maxScore, Message: "No response received", Details: details, ExecutionTime: time.Since(start).Seconds()}
	}
	details["status_code"] = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		return CheckResult{Name: "Transactions Endpoint", MaxScore: maxScore, Message: fmt.Sprintf("HTTP %d", resp.StatusCode), Details: details, ExecutionTime: time.Since(start).Seconds()}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		details["json_error"] = true
		return CheckResult{Name: "Transactions Endpoint", MaxScore: maxScore, Message: "Invalid JSON response", Details: details, ExecutionTime: time.Since(start).Seconds()}
	}

	checks := map[string]bool{
		"is_list_or_has_transactions": isListOrHasTransactions(data),
		"has_transaction_data":        hasTransactionData(data),
		"response_not_empty":          countTransactions(data) > 0,
	}
	details["structure_checks"] = checks
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}

	return CheckResult{
		Name:          "Transactions Endpoint",
		Passed:        passed == len(checks),
		Score:         float64(passed) / float64(len(checks)) * maxScore,
		MaxScore:      maxScore,
		Message:       fmt.Sprintf("Structure checks passed: %d/%d", passed, len(checks)),
		Details:       details,
		ExecutionTime: time.Since(start).Seconds(),
	}
}

func (v *Validator) checkBalance(ctx context.Context) CheckResult {
	const maxScore = 25.0
	start := time.Now()

	if len(v.accounts) == 0 {
		return CheckResult{Name: "Balance Endpoint", MaxScore: maxScore, Message: "No test accounts available", Details: map[string]any{}}
	}

	account := v.accounts[0]
	details := map[string]any{"account_tested": account}

	resp, body, reqTime, err := v.get(ctx, "/users/"+account+"/balance")
	details["response_time"] = reqTime
	if err != nil {
		return CheckResult{Name: "Balance Endpoint", MaxScore: maxScore, Message: "No response received", Details: details, ExecutionTime: time.Since(start).Seconds()}
	}
	details["status_code"] = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		return CheckResult{Name: "Balance Endpoint", MaxScore: maxScore, Message: fmt.Sprintf("HTTP %d", resp.StatusCode), Details: details, ExecutionTime: time.Since(start).Seconds()}
	}

	var data map[string]any
	isObject := json.Unmarshal(body, &data) == nil

	checks := map[string]bool{
		"proper_json_structure": isObject,
		"has_balance_field":     isObject && hasBalanceField(data),
		"balance_is_numeric":    isObject && hasNumericBalance(data),
	}
	details["structure_checks"] = checks
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}

	return CheckResult{
		Name:          "Balance Endpoint",
		Passed:        passed == len(checks),
		Score:         float64(passed) / float64(len(checks)) * maxScore,
		MaxScore:      maxScore,
		Message:       fmt.Sprintf("Balance checks passed: %d/%d", passed, len(checks)),
		Details:       details,
		ExecutionTime: time.Since(start).Seconds(),
	}
}

func (v *Validator) checkConsistency(ctx context.Context) CheckResult {
	const maxScore = 15.0
	start := time.Now()

	if len(v.accounts) < 3 {
		return CheckResult{Name: "Data Consistency", MaxScore: maxScore, Message: "Need at least 3 accounts for consistency testing", Details: map[string]any{}}
	}

	tested := make([]map[string]any, 0, 3)
	consistent := 0
	for _, account := range v.accounts[:3] {
		resp, body, reqTime, err := v.get(ctx, "/users/"+account+"/transactions")
		detail := map[string]any{"account": account, "response_time": reqTime}

		valid := false
		if err == nil && resp.StatusCode == http.StatusOK {
			var data any
			if json.Unmarshal(body, &data) == nil {
				valid = true
				detail["transaction_count"] = countTransactions(data)
				consistent++
			}
		}
		detail["has_valid_response"] = valid
		tested = append(tested, detail)
	}

	return CheckResult{
		Name:          "Data Consistency",
		Passed:        consistent == 3,
		Score:         float64(consistent) / 3 * maxScore,
		MaxScore:      maxScore,
		Message:       fmt.Sprintf("Consistent responses: %d/3 accounts", consistent),
		Details:       map[string]any{"accounts_tested": tested},
		ExecutionTime: time.Since(start).Seconds(),
	}
}

func (v *Validator) checkPerformance(ctx context.Context) CheckResult {
	const maxScore = 15.0
	start := time.Now()

	if len(v.accounts) == 0 {
		return CheckResult{Name: "Performance", MaxScore: maxScore, Message: "No test accounts available", Details: map[string]any{}}
	}

	account := v.accounts[0]
	times := make([]float64, 0, 5)
	var sum, slowest float64
	for i := 0; i < 5; i++ {
		_, _, reqTime, _ := v.get(ctx, "/users/"+account+"/transactions")
		times = append(times, reqTime)
		sum += reqTime
		if reqTime > slowest {
			slowest = reqTime
		}
		time.Sleep(100 * time.Millisecond)
	}
	avg := sum / float64(len(times))

	details := map[string]any{
		"response_times":  times,
		"average_time":    avg,
		"max_time":        slowest,
		"requests_tested": len(times),
	}

	var score float64
	var passed bool
	var quality string
	switch {
	case avg < 1.0:
		score, passed, quality = 15.0, true, "Excellent"
	case avg < 2.0:
		score, passed, quality = 12.0, true, "Good"
	case avg < 5.0:
		score, passed, quality = 8.0, true, "Acceptable"
	default:
		score, passed, quality = 3.0, false, "Poor"
	}

	return CheckResult{
		Name:          "Performance",
		Passed:        passed,
		Score:         score,
		MaxScore:      maxScore,
		Message:       fmt.Sprintf("%s performance: %.2fs average", quality, avg),
		Details:       details,
		ExecutionTime: time.Since(start).Seconds(),
	}
}

func isListOrHasTransactions(data any) bool {
	switch d := data.(type) {
	case []any:
		return true
	case map[string]any:
		_, ok := d["transactions"]
		return ok
	}
	return false
}

func hasTransactionData(data any) bool {
	switch d := data.(type) {
	case []any:
		if len(d) == 0 {
			return false
		}
		_, ok := d[0].(map[string]any)
		return ok
	case map[string]any:
		list, ok := d["transactions"].([]any)
		return ok && len(list) > 0
	}
	return false
}

func countTransactions(data any) int {
	switch d := data.(type) {
	case []any:
		return len(d)
	case map[string]any:
		if list, ok := d["transactions"].([]any); ok {
			return len(list)
		}
	}
	return 0
}

var balanceFields = []string{"balance", "amount", "total", "current_balance"}

func hasBalanceField(data map[string]any) bool {
	for _, field := range balanceFields {
		if _, ok := data[field]; ok {
			return true
		}
	}
	return false
}

func hasNumericBalance(data map[string]any) bool {
	for _, field := range balanceFields {
		value, ok := data[field]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return true
		case string:
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				return true
			}
		}
	}
	return false
}
