package services_test

import (
	"context"

	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoice(ctx context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error) {
	args := m.Called(ctx, schema, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockInvoiceRepository) QueryRecords(ctx context.Context, schema string, query portsrepo.RecordQuery) ([]portsrepo.FieldMap, error) {
	args := m.Called(ctx, schema, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.FieldMap), args.Error(1)
}

func (m *MockInvoiceRepository) GetReturnedQuantity(ctx context.Context, schema domain.SchemaName, item, sourceName string) (decimal.Decimal, error) {
	args := m.Called(ctx, schema, item, sourceName)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateRecord(ctx context.Context, schema domain.SchemaName, name string, fields portsrepo.FieldMap) error {
	args := m.Called(ctx, schema, name, fields)
	return args.Error(0)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Mock KeyValueStore ---
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ portsrepo.KeyValueStore = (*MockKeyValueStore)(nil)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRate(ctx context.Context, date, from, to string) (decimal.Decimal, error) {
	args := m.Called(ctx, date, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.RateProvider = (*MockRateProvider)(nil)

// --- Mock SinglesReader ---
type MockSinglesReader struct {
	mock.Mock
}

func (m *MockSinglesReader) GetSingleValue(ctx context.Context, parent, field string) (string, bool, error) {
	args := m.Called(ctx, parent, field)
	return args.String(0), args.Bool(1), args.Error(2)
}

var _ portsrepo.SinglesReader = (*MockSinglesReader)(nil)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
