package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

// registerAPISteps wires the request-building steps: user setup, resource
// creation through the public API and the calls under test.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^a registered user with email "([^"]*)" and password "([^"]*)"$`, aRegisteredUser)
	ctx.Given(`^no access token is set$`, noAccessTokenIsSet)
	ctx.Given(`^an "([^"]*)" transaction "([^"]*)" of "([^"]*)" in category "([^"]*)" dated "([^"]*)"$`, aTransactionExists)
	ctx.Given(`^a budget of "([^"]*)" for category "([^"]*)"$`, aBudgetExists)
	ctx.Given(`^a bill "([^"]*)" of "([^"]*)" due "([^"]*)"$`, aBillExists)

	ctx.When(`^I register with email "([^"]*)", name "([^"]*)" and password "([^"]*)"$`, iRegister)
	ctx.When(`^I log in with email "([^"]*)" and password "([^"]*)"$`, iLogIn)
	ctx.When(`^I refresh the financial summary$`, iRefreshTheSummary)
	ctx.When(`^I fetch the financial summary$`, iFetchTheSummary)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// execute performs an HTTP request against the scenario's server and stores
// the response on the test context.
func (t *TestContext) execute(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = resp
	t.responseBody = bodyBytes
	return nil
}

// executeJSON marshals the payload and performs the request.
func (t *TestContext) executeJSON(method, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return t.execute(method, path, data)
}

// body parses the stored response body as a JSON object.
func (t *TestContext) body() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	var parsed map[string]any
	if err := json.Unmarshal(t.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %s", string(t.responseBody))
	}
	return parsed, nil
}

func aRegisteredUser(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if err := tc.executeJSON(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": password,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	parsed, err := tc.body()
	if err != nil {
		return err
	}
	token, ok := parsed["token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("registration response has no token: %s", string(tc.responseBody))
	}
	tc.accessToken = token
	return nil
}

func noAccessTokenIsSet(ctx context.Context) error {
	GetTestContext(ctx).accessToken = ""
	return nil
}

func aTransactionExists(ctx context.Context, transactionType, description, amount, category, date string) error {
	tc := GetTestContext(ctx)

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	if err := tc.executeJSON(http.MethodPost, "/api/v1/transactions", map[string]any{
		"description": description,
		"amount":      parsedAmount,
		"type":        transactionType,
		"category":    category,
		"date":        parsedDate.UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func aBudgetExists(ctx context.Context, limit, category string) error {
	tc := GetTestContext(ctx)

	parsedLimit, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}

	if err := tc.executeJSON(http.MethodPost, "/api/v1/budgets", map[string]any{
		"category": category,
		"limit":    parsedLimit,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("budget creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func aBillExists(ctx context.Context, name, amount, dueDate string) error {
	tc := GetTestContext(ctx)

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}

	if err := tc.executeJSON(http.MethodPost, "/api/v1/bills", map[string]any{
		"name":    name,
		"amount":  parsedAmount,
		"dueDate": parsedDate.UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("bill creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iRegister(ctx context.Context, email, name, password string) error {
	return GetTestContext(ctx).executeJSON(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	})
}

func iLogIn(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if err := tc.executeJSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode == http.StatusOK {
		if parsed, err := tc.body(); err == nil {
			if token, ok := parsed["token"].(string); ok {
				tc.accessToken = token
			}
		}
	}
	return nil
}

func iRefreshTheSummary(ctx context.Context) error {
	return GetTestContext(ctx).execute(http.MethodPost, "/api/v1/summary/refresh", nil)
}

func iFetchTheSummary(ctx context.Context) error {
	return GetTestContext(ctx).execute(http.MethodGet, "/api/v1/summary", nil)
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).execute(strings.ToUpper(method), path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(body.Content)
	}
	return GetTestContext(ctx).execute(strings.ToUpper(method), path, payload)
}
