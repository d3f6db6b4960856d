package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/SscSPs/books_core/internal/dto"
	"github.com/SscSPs/books_core/internal/handlers"
	"github.com/SscSPs/books_core/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error) {
	args := m.Called(ctx, schema, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceStatus(ctx context.Context, schema domain.SchemaName, name string) (domain.StatusBadge, error) {
	args := m.Called(ctx, schema, name)
	return args.Get(0).(domain.StatusBadge), args.Error(1)
}

var _ portssvc.InvoiceReaderSvc = (*MockInvoiceService)(nil)

// --- Mock ReturnDocumentService ---
type MockReturnDocumentService struct {
	mock.Mock
}

func (m *MockReturnDocumentService) CreateReturnDocument(ctx context.Context, source *domain.Snapshot, kind domain.SchemaName) (*domain.DocumentDraft, error) {
	args := m.Called(ctx, source, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentDraft), args.Error(1)
}

func (m *MockReturnDocumentService) UpdateReturnCompleteStatus(ctx context.Context, returnDoc *domain.Snapshot) (domain.CompletionOutcome, error) {
	args := m.Called(ctx, returnDoc)
	return args.Get(0).(domain.CompletionOutcome), args.Error(1)
}

var _ portssvc.ReturnDocumentSvc = (*MockReturnDocumentService)(nil)

// --- Mock InvoiceActionService ---
type MockInvoiceActionService struct {
	mock.Mock
}

func (m *MockInvoiceActionService) AvailableActions(snapshot *domain.Snapshot) []domain.Action {
	args := m.Called(snapshot)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Action)
}

func (m *MockInvoiceActionService) Execute(ctx context.Context, kind domain.ActionKind, snapshot *domain.Snapshot) (*domain.ActionResult, error) {
	args := m.Called(ctx, kind, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionResult), args.Error(1)
}

var _ portssvc.InvoiceActionSvc = (*MockInvoiceActionService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, from, to string, date *time.Time) domain.ExchangeRate {
	args := m.Called(ctx, from, to, date)
	return args.Get(0).(domain.ExchangeRate)
}

func (m *MockExchangeRateService) ClearExchangeRate(ctx context.Context, from, to string, date *time.Time) error {
	args := m.Called(ctx, from, to, date)
	return args.Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock NumberSeriesService ---
type MockNumberSeriesService struct {
	mock.Mock
}

func (m *MockNumberSeriesService) GetNumberSeries(ctx context.Context, schema domain.SchemaName) (string, bool, error) {
	args := m.Called(ctx, schema)
	return args.String(0), args.Bool(1), args.Error(2)
}

var _ portssvc.NumberSeriesSvc = (*MockNumberSeriesService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	jwtSecret        string
	mockInvoices     *MockInvoiceService
	mockReturns      *MockReturnDocumentService
	mockActions      *MockInvoiceActionService
	mockExchangeRate *MockExchangeRateService
	mockNumberSeries *MockNumberSeriesService
}

func (suite *HandlerTestSuite) SetupSuite() {
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockInvoices = new(MockInvoiceService)
	suite.mockReturns = new(MockReturnDocumentService)
	suite.mockActions = new(MockInvoiceActionService)
	suite.mockExchangeRate = new(MockExchangeRateService)
	suite.mockNumberSeries = new(MockNumberSeriesService)

	services := &portssvc.ServiceContainer{
		Invoice:      suite.mockInvoices,
		Returns:      suite.mockReturns,
		Actions:      suite.mockActions,
		ExchangeRate: suite.mockExchangeRate,
		NumberSeries: suite.mockNumberSeries,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{JWTSecret: suite.jwtSecret}, services, nil)
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "books-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func storedInvoice() *domain.Snapshot {
	return &domain.Snapshot{
		SchemaName:        domain.SalesInvoice,
		Name:              "SINV-1001",
		Submitted:         true,
		GrandTotal:        decimal.NewFromInt(100),
		OutstandingAmount: decimal.NewFromInt(100),
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/number-series/SalesInvoice", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockNumberSeries.AssertNotCalled(suite.T(), "GetNumberSeries", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestResolveDocumentStatus() {
	body := map[string]any{
		"schemaName":        "SalesInvoice",
		"submitted":         true,
		"grandTotal":        "100",
		"outstandingAmount": "40",
	}

	w := suite.do(http.MethodPost, "/api/v1/documents/status", body)

	suite.Equal(http.StatusOK, w.Code)
	var badge domain.StatusBadge
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &badge))
	suite.Equal(domain.StatusPartlyPaid, badge.Status)
	suite.Equal("Partly Paid", badge.Label)
	suite.Equal(domain.ColorOrange, badge.Color)
}

func (suite *HandlerTestSuite) TestResolveDocumentStatus_UnknownSchema() {
	w := suite.do(http.MethodPost, "/api/v1/documents/status", map[string]any{"schemaName": "Widget"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetInvoiceStatus() {
	badge := domain.StatusUnpaid.Badge()
	suite.mockInvoices.On("GetInvoiceStatus", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(badge, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/SalesInvoice/SINV-1001/status", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"Unpaid","color":"orange","label":"Unpaid"}`, w.Body.String())
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetInvoiceStatus_NotFound() {
	suite.mockInvoices.On("GetInvoiceStatus", mock.Anything, domain.PurchaseInvoice, "PINV-9").
		Return(domain.StatusBadge{}, apperrors.NewNotFoundError("PurchaseInvoice PINV-9 not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/PurchaseInvoice/PINV-9/status", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetInvoiceStatus_NotAnInvoice() {
	w := suite.do(http.MethodGet, "/api/v1/invoices/Payment/PAY-1/status", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoices.AssertNotCalled(suite.T(), "GetInvoiceStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListActions() {
	invoice := storedInvoice()
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(invoice, nil).Once()
	suite.mockActions.On("AvailableActions", invoice).Return([]domain.Action{domain.LedgerLinkAction(false)}).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/SalesInvoice/SINV-1001/actions", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"kind":"ledger","label":"Accounting Entries","group":"View"}]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestExecuteAction_Payment() {
	invoice := storedInvoice()
	result := &domain.ActionResult{
		Kind:    domain.ActionPayment,
		Payment: &domain.PaymentDraft{PaymentType: domain.PaymentReceive, Amount: decimal.NewFromInt(100)},
	}
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(invoice, nil).Once()
	suite.mockActions.On("Execute", mock.Anything, domain.ActionPayment, invoice).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/SalesInvoice/SINV-1001/actions/payment", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.ActionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().NotNil(got.Payment)
	suite.Equal(domain.PaymentReceive, got.Payment.PaymentType)
}

func (suite *HandlerTestSuite) TestExecuteAction_NotAvailable() {
	invoice := storedInvoice()
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(invoice, nil).Once()
	suite.mockActions.On("Execute", mock.Anything, domain.ActionDebitNote, invoice).
		Return(nil, apperrors.NewValidationError("action is not available")).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/SalesInvoice/SINV-1001/actions/debit-note", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExecuteAction_NothingToTransfer() {
	invoice := storedInvoice()
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(invoice, nil).Once()
	suite.mockActions.On("Execute", mock.Anything, domain.ActionStockTransfer, invoice).
		Return(&domain.ActionResult{Kind: domain.ActionStockTransfer}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/SalesInvoice/SINV-1001/actions/stock-transfer", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestCreateReturnDocument() {
	invoice := storedInvoice()
	draft := &domain.DocumentDraft{SchemaName: domain.SalesInvoice, IsReturn: true, ReturnAgainst: "SINV-1001"}
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(invoice, nil).Once()
	suite.mockReturns.On("CreateReturnDocument", mock.Anything, invoice, domain.SalesInvoice).Return(draft, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/SalesInvoice/SINV-1001/returns", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.DocumentDraft
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.IsReturn)
	suite.Equal("SINV-1001", got.ReturnAgainst)
}

func (suite *HandlerTestSuite) TestCreateReturnDocument_StorageFailure() {
	invoice := storedInvoice()
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1001").Return(invoice, nil).Once()
	suite.mockReturns.On("CreateReturnDocument", mock.Anything, invoice, domain.SalesInvoice).
		Return(nil, errors.New("connection reset")).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/SalesInvoice/SINV-1001/returns", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestUpdateReturnCompletion() {
	returnDoc := storedInvoice()
	returnDoc.Name = "SINV-1002"
	returnDoc.IsReturn = true
	returnDoc.ReturnAgainst = "SINV-1001"
	suite.mockInvoices.On("GetInvoice", mock.Anything, domain.SalesInvoice, "SINV-1002").Return(returnDoc, nil).Once()
	suite.mockReturns.On("UpdateReturnCompleteStatus", mock.Anything, returnDoc).Return(domain.CompletionComplete, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/SalesInvoice/SINV-1002/return-completion", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"returnAgainst":"SINV-1001","outcome":"Complete"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetExchangeRate() {
	rate := domain.ExchangeRate{From: "USD", To: "INR", Date: "2024-03-01", Rate: decimal.RequireFromString("83.12"), Source: domain.RateSourceRemote}
	suite.mockExchangeRate.On("GetExchangeRate", mock.Anything, "USD", "INR", mock.MatchedBy(func(d *time.Time) bool {
		return d != nil && d.Format("2006-01-02") == "2024-03-01"
	})).Return(rate).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/INR?date=2024-03-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"from":"USD","to":"INR","date":"2024-03-01","rate":"83.12","source":"remote"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetExchangeRate_Today() {
	rate := domain.ExchangeRate{From: "EUR", To: "USD", Date: "2024-03-01", Rate: decimal.NewFromInt(1), Source: domain.RateSourceFallback}
	suite.mockExchangeRate.On("GetExchangeRate", mock.Anything, "EUR", "USD", (*time.Time)(nil)).Return(rate).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/EUR/USD", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockExchangeRate.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetExchangeRate_BadInput() {
	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/usd/INR", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/INR?date=01-03-2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockExchangeRate.AssertNotCalled(suite.T(), "GetExchangeRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestClearExchangeRate() {
	suite.mockExchangeRate.On("ClearExchangeRate", mock.Anything, "USD", "INR", (*time.Time)(nil)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/exchange-rates/USD/INR", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockExchangeRate.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetNumberSeries() {
	suite.mockNumberSeries.On("GetNumberSeries", mock.Anything, domain.SalesInvoice).Return("SINV-", true, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/number-series/SalesInvoice", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"schema":"SalesInvoice","numberSeries":"SINV-"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetNumberSeries_None() {
	suite.mockNumberSeries.On("GetNumberSeries", mock.Anything, domain.Party).Return("", false, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/number-series/Party", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetNumberSeries_UnknownSchema() {
	w := suite.do(http.MethodGet, "/api/v1/number-series/Widget", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockNumberSeries.AssertNotCalled(suite.T(), "GetNumberSeries", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
// --- CORS ---

func (suite *HandlerTestSuite) corsRouter(origins ...string) *gin.Engine {
	r := gin.New()
	cfg := &config.Config{JWTSecret: suite.jwtSecret, AllowedOrigins: origins}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{}, nil)
	return r
}

func (suite *HandlerTestSuite) TestCORS_Preflight() {
	r := suite.corsRouter("https://books.example.com")

	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/documents/status", nil)
	req.Header.Set("Origin", "https://books.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("https://books.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	suite.Equal("true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *HandlerTestSuite) TestCORS_SimpleRequest() {
	r := suite.corsRouter("https://books.example.com")

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://books.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("https://books.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *HandlerTestSuite) TestCORS_UnknownOrigin() {
	r := suite.corsRouter("https://books.example.com")

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Empty(w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *HandlerTestSuite) TestCORS_DisabledByDefault() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://books.example.com")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
