//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// testContext holds the per-scenario state shared between steps.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	currentPaymentModeID uuid.UUID
	currentExpenseID     uuid.UUID
	currentBudgetID      uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"payment_modes": &model.PaymentModeModel{},
			"expenses":      &model.ExpenseModel{},
			"budgets":       &model.BudgetModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a payment mode exists with name "([^"]*)" and type "([^"]*)"$`, test.aPaymentModeExists)
	ctx.Given(`^an expense exists with title "([^"]*)" amount "([^"]*)" and category "([^"]*)" for today$`, test.anExpenseExistsForToday)
	ctx.Given(`^an expense exists with title "([^"]*)" amount "([^"]*)" and category "([^"]*)" on "([^"]*)"$`, test.anExpenseExistsOn)
	ctx.Given(`^an installment expense exists with title "([^"]*)" principal "([^"]*)" over (\d+) months at "([^"]*)" percent$`, test.anInstallmentExpenseExists)
	ctx.Given(`^the expense is marked paid$`, test.theExpenseIsMarkedPaid)
	ctx.Given(`^a budget exists for category "([^"]*)" with amount "([^"]*)" for the current month$`, test.aBudgetExistsForCurrentMonth)
	ctx.Given(`^a budget exists for category "([^"]*)" with amount "([^"]*)" for month "([^"]*)"$`, test.aBudgetExistsForMonth)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentPaymentModeID = uuid.Nil
	t.currentExpenseID = uuid.Nil
	t.currentBudgetID = uuid.Nil

	if t.db != nil {
		_ = t.db.Reset()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			aggregateCache := cache.NewRedisAggregateCache(mock.NewRedis(), time.Minute)
			injector := dependency.NewInjector(config.Load(), testDB.DbConn, aggregateCache, func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
