package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

// registerAssertionSteps wires the response assertion steps.
func registerAssertionSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Then(`^the response error code should be "([^"]*)"$`, theResponseErrorCodeShouldBe)

	ctx.Then(`^the summary net worth should be "([^"]*)"$`, theSummaryNetWorthShouldBe)
	ctx.Then(`^the summary should have (\d+) budget insights?$`, theSummaryShouldHaveBudgetInsights)
	ctx.Then(`^the insight for category "([^"]*)" should have status "([^"]*)"$`, theInsightShouldHaveStatus)
	ctx.Then(`^the insight for category "([^"]*)" should have spent "([^"]*)" and remaining "([^"]*)"$`, theInsightShouldHaveSpentAndRemaining)
	ctx.Then(`^the trend for month "([^"]*)" should have savings "([^"]*)"$`, theTrendShouldHaveSavings)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return errors.New("no response received")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.body()
	if err != nil {
		return err
	}
	if getFieldValue(parsed, field) == nil {
		return fmt.Errorf("response does not contain field %q: %s", field, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	parsed, err := tc.body()
	if err != nil {
		return err
	}
	value := getFieldValue(parsed, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(tc.responseBody))
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseErrorCodeShouldBe(ctx context.Context, code string) error {
	return theResponseFieldShouldBe(ctx, "code", code)
}

// summaryBody returns the summary object, unwrapping the not-saved envelope
// returned when persistence fails after computation.
func summaryBody(ctx context.Context) (map[string]any, error) {
	parsed, err := GetTestContext(ctx).body()
	if err != nil {
		return nil, err
	}
	if inner, ok := parsed["summary"].(map[string]any); ok {
		return inner, nil
	}
	return parsed, nil
}

func theSummaryNetWorthShouldBe(ctx context.Context, expected string) error {
	summary, err := summaryBody(ctx)
	if err != nil {
		return err
	}
	return compareDecimalField(summary, "net_worth", expected)
}

func theSummaryShouldHaveBudgetInsights(ctx context.Context, count int) error {
	summary, err := summaryBody(ctx)
	if err != nil {
		return err
	}
	insights, ok := summary["budget_insights"].([]any)
	if !ok {
		return fmt.Errorf("summary has no budget_insights array: %v", summary)
	}
	if len(insights) != count {
		return fmt.Errorf("expected %d budget insights, got %d: %v", count, len(insights), insights)
	}
	return nil
}

func theInsightShouldHaveStatus(ctx context.Context, category, status string) error {
	insight, err := findInsight(ctx, category)
	if err != nil {
		return err
	}
	if actual := fmt.Sprintf("%v", insight["status"]); actual != status {
		return fmt.Errorf("insight for %q expected status %q, got %q", category, status, actual)
	}
	return nil
}

func theInsightShouldHaveSpentAndRemaining(ctx context.Context, category, spent, remaining string) error {
	insight, err := findInsight(ctx, category)
	if err != nil {
		return err
	}
	if err := compareDecimalField(insight, "spent", spent); err != nil {
		return fmt.Errorf("insight for %q: %w", category, err)
	}
	if err := compareDecimalField(insight, "remaining", remaining); err != nil {
		return fmt.Errorf("insight for %q: %w", category, err)
	}
	return nil
}

func theTrendShouldHaveSavings(ctx context.Context, month, savings string) error {
	summary, err := summaryBody(ctx)
	if err != nil {
		return err
	}
	trends, ok := summary["monthly_trends"].(map[string]any)
	if !ok {
		return fmt.Errorf("summary has no monthly_trends object: %v", summary)
	}
	trend, ok := trends[month].(map[string]any)
	if !ok {
		return fmt.Errorf("no trend for month %q: %v", month, trends)
	}
	return compareDecimalField(trend, "savings", savings)
}

func findInsight(ctx context.Context, category string) (map[string]any, error) {
	summary, err := summaryBody(ctx)
	if err != nil {
		return nil, err
	}
	insights, ok := summary["budget_insights"].([]any)
	if !ok {
		return nil, fmt.Errorf("summary has no budget_insights array: %v", summary)
	}
	for _, raw := range insights {
		if insight, ok := raw.(map[string]any); ok {
			if fmt.Sprintf("%v", insight["category"]) == category {
				return insight, nil
			}
		}
	}
	return nil, fmt.Errorf("no insight for category %q: %v", category, insights)
}

// compareDecimalField compares numerically so "454.01" matches "454.010".
func compareDecimalField(object map[string]any, field, expected string) error {
	raw := object[field]
	if raw == nil {
		return fmt.Errorf("field %q not found: %v", field, object)
	}
	actual, err := decimal.NewFromString(fmt.Sprintf("%v", raw))
	if err != nil {
		return fmt.Errorf("field %q is not a decimal: %v", field, raw)
	}
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected decimal %q: %w", expected, err)
	}
	if !actual.Equal(want) {
		return fmt.Errorf("field %q expected %s, got %s", field, want, actual)
	}
	return nil
}

// getFieldValue resolves a dot separated path, with numeric segments
// indexing into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}
		if index, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || index >= len(arr) {
				return nil
			}
			field = arr[index]
			continue
		}
		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}
	return field
}
