//go:build integration

package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// Seeding steps

func (t *testContext) aPaymentModeExists(name, modeType string) error {
	mode := &model.PaymentModeModel{
		ID:        uuid.New(),
		Name:      name,
		Type:      modeType,
		Icon:      "CreditCard",
		Color:     "#FF6B6B",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(mode).Error; err != nil {
		return err
	}
	t.currentPaymentModeID = mode.ID
	return nil
}

func (t *testContext) anExpenseExistsForToday(title, amount, category string) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.createExpense(title, amount, category, today)
}

func (t *testContext) anExpenseExistsOn(title, amount, category, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.createExpense(title, amount, category, day)
}

func (t *testContext) createExpense(title, amount, category string, date time.Time) error {
	if t.currentPaymentModeID == uuid.Nil {
		return errors.New("no payment mode seeded")
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	expense := &model.ExpenseModel{
		ID:            uuid.New(),
		Title:         title,
		Amount:        value,
		Category:      category,
		Date:          date,
		PaymentModeID: t.currentPaymentModeID,
		PaidAmount:    decimal.Zero,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(expense).Error; err != nil {
		return err
	}
	t.currentExpenseID = expense.ID
	return nil
}

func (t *testContext) anInstallmentExpenseExists(title, principal string, tenureMonths int, rate string) error {
	if t.currentPaymentModeID == uuid.Nil {
		return errors.New("no payment mode seeded")
	}
	principalValue, err := decimal.NewFromString(principal)
	if err != nil {
		return fmt.Errorf("invalid principal %q: %w", principal, err)
	}
	rateValue, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	schedule, err := valueobject.ComputeEMISchedule(principalValue, tenureMonths, rateValue, decimal.Zero, decimal.Zero)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	gstRate := decimal.Zero
	processingFee := decimal.Zero

	expense := &model.ExpenseModel{
		ID:                  uuid.New(),
		Title:               title,
		Amount:              principalValue,
		Category:            "Shopping",
		Date:                today,
		PaymentModeID:       t.currentPaymentModeID,
		IsEMI:               true,
		TenureMonths:        &tenureMonths,
		AnnualInterestRate:  &rateValue,
		ProcessingFee:       &processingFee,
		GSTRate:             &gstRate,
		MonthlyAmount:       &schedule.MonthlyAmount,
		TotalAmount:         &schedule.TotalAmount,
		TotalInterest:       &schedule.TotalInterest,
		TotalProcessingFees: &schedule.TotalProcessingFees,
		PaidAmount:          decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := t.db.DbConn.Create(expense).Error; err != nil {
		return err
	}
	t.currentExpenseID = expense.ID
	return nil
}

func (t *testContext) theExpenseIsMarkedPaid() error {
	if t.currentExpenseID == uuid.Nil {
		return errors.New("no expense seeded")
	}
	var expense model.ExpenseModel
	if err := t.db.DbConn.First(&expense, "id = ?", t.currentExpenseID).Error; err != nil {
		return err
	}
	now := time.Now().UTC()
	return t.db.DbConn.Model(&model.ExpenseModel{}).
		Where("id = ?", t.currentExpenseID).
		Updates(map[string]any{
			"is_paid":     true,
			"paid_amount": expense.Amount,
			"paid_date":   now,
		}).Error
}

func (t *testContext) aBudgetExistsForCurrentMonth(category, amount string) error {
	return t.aBudgetExistsForMonth(category, amount, time.Now().Format("2006-01"))
}

func (t *testContext) aBudgetExistsForMonth(category, amount, month string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	budget := &model.BudgetModel{
		ID:        uuid.New(),
		Category:  category,
		Amount:    value,
		Month:     month,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(budget).Error; err != nil {
		return err
	}
	t.currentBudgetID = budget.ID
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	now := time.Now()
	content = strings.ReplaceAll(content, "{{payment_mode_id}}", t.currentPaymentModeID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.currentExpenseID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{current_month}}", now.Format("2006-01"))
	content = strings.ReplaceAll(content, "{{today}}", now.Format("2006-01-02"))
	content = strings.ReplaceAll(content, "{{current_year}}", strconv.Itoa(now.Year()))
	content = strings.ReplaceAll(content, "{{current_month_number}}", strconv.Itoa(int(now.Month())))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    bodyBytes,
	}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = parsed
	t.captureIDs(parsed)
	return nil
}

// captureIDs remembers created resource IDs so later steps can address them
// through placeholders. The resource kind is recognized by response shape.
func (t *testContext) captureIDs(body any) {
	object, ok := body.(map[string]any)
	if !ok {
		return
	}

	if expense, ok := object["expense"].(map[string]any); ok {
		object = expense
	}

	idStr, ok := object["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(object, "icon"):
		t.currentPaymentModeID = id
	case hasKey(object, "payment_mode_id"):
		t.currentExpenseID = id
	case hasKey(object, "month"):
		t.currentBudgetID = id
	}
}

func hasKey(object map[string]any, key string) bool {
	_, ok := object[key]
	return ok
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	}
	return fmt.Errorf("response is not JSON: %s", string(t.response.raw))
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

// getFieldValue walks a dot-separated path through nested objects; numeric
// segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}

// Database assertion steps

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	slicePtr := newModelSlice(entity)
	if err := t.db.DbConn.Unscoped().Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	slicePtr := newModelSlice(entity)
	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func newModelSlice(entity any) reflect.Value {
	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))
	slicePtr.Elem().Set(reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0))
	return slicePtr
}
