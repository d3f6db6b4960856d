package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	"github.com/SscSPs/books_core/internal/models"
	"github.com/SscSPs/books_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices and their items.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// FindInvoice loads an invoice header and its items from one read-only snapshot.
func (r *PgxInvoiceRepository) FindInvoice(ctx context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error) {
	var (
		invoice models.Invoice
		items   []models.InvoiceItem
	)

	err := r.WithTx(ctx, readSnapshotTx, func(tx pgx.Tx) error {
		query := `
			SELECT schema_name, name, party, currency, date, number_series, submitted, cancelled,
				is_return, return_against, return_completed, net_total, grand_total, base_grand_total,
				outstanding_amount, stock_not_transferred, created_at, last_updated_at
			FROM invoices
			WHERE schema_name = $1 AND name = $2;
		`
		err := tx.QueryRow(ctx, query, string(schema), name).Scan(
			&invoice.SchemaName,
			&invoice.Name,
			&invoice.Party,
			&invoice.Currency,
			&invoice.Date,
			&invoice.NumberSeries,
			&invoice.Submitted,
			&invoice.Cancelled,
			&invoice.IsReturn,
			&invoice.ReturnAgainst,
			&invoice.ReturnCompleted,
			&invoice.NetTotal,
			&invoice.GrandTotal,
			&invoice.BaseGrandTotal,
			&invoice.OutstandingAmount,
			&invoice.StockNotTransferred,
			&invoice.CreatedAt,
			&invoice.LastUpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", schema, name))
			}
			return apperrors.NewAppError(500, "failed to find invoice", err)
		}

		rows, err := tx.Query(ctx, `
			SELECT schema_name, name, parent, idx, item, quantity, transfer_quantity, rate, amount, stock_not_transferred
			FROM invoice_items
			WHERE schema_name = $1 AND parent = $2
			ORDER BY idx;
		`, string(schema), name)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query invoice items", err)
		}
		defer rows.Close()

		items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceItem, error) {
			var item models.InvoiceItem
			err := row.Scan(
				&item.SchemaName,
				&item.Name,
				&item.Parent,
				&item.Idx,
				&item.Item,
				&item.Quantity,
				&item.TransferQuantity,
				&item.Rate,
				&item.Amount,
				&item.StockNotTransferred,
			)
			return item, err
		})
		if err != nil {
			return apperrors.NewAppError(500, "failed to scan invoice items", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshot := mapping.ToDomainSnapshot(invoice, items)
	return &snapshot, nil
}

// QueryRecords runs an equality-filtered select against an invoice or invoice item table.
// Field and filter names are checked against a fixed column list before any SQL is built.
func (r *PgxInvoiceRepository) QueryRecords(ctx context.Context, schema string, query portsrepo.RecordQuery) ([]portsrepo.FieldMap, error) {
	table, err := resolveRecordTable(schema)
	if err != nil {
		return nil, err
	}
	fields, err := table.selectFields(query.Fields)
	if err != nil {
		return nil, err
	}

	selectCols := make([]string, len(fields))
	for i, f := range fields {
		selectCols[i] = table.columns[f].name
	}

	args := []any{string(table.schemaName)}
	where := []string{"schema_name = $1"}
	for field, value := range query.Filters {
		col, ok := table.columns[field]
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown filter %q on %s", field, table.table))
		}
		args = append(args, value)
		where = append(where, fmt.Sprintf("%s = $%d", col.name, len(args)))
	}

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s;",
		strings.Join(selectCols, ", "), table.table, strings.Join(where, " AND "), table.orderBy)

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query %s", schema), err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (portsrepo.FieldMap, error) {
		targets := make([]any, len(fields))
		for i, f := range fields {
			targets[i] = newScanTarget(table.columns[f].kind)
		}
		if err := row.Scan(targets...); err != nil {
			return nil, err
		}
		record := make(portsrepo.FieldMap, len(fields))
		for i, f := range fields {
			record[f] = scannedValue(targets[i])
		}
		return record, nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to scan %s", schema), err)
	}
	return records, nil
}

// GetReturnedQuantity sums return lines of item against sourceName. Return quantities are
// stored negative, so the sum is negated.
func (r *PgxInvoiceRepository) GetReturnedQuantity(ctx context.Context, schema domain.SchemaName, item, sourceName string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(ii.quantity), 0)
		FROM invoice_items ii
		JOIN invoices i ON i.schema_name = ii.schema_name AND i.name = ii.parent
		WHERE i.schema_name = $1
			AND i.is_return
			AND i.return_against = $2
			AND i.submitted
			AND NOT i.cancelled
			AND ii.item = $3;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(schema), sourceName, item).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum returned quantity", err)
	}
	return total.Neg(), nil
}

// UpdateRecord sets writable fields on one invoice.
func (r *PgxInvoiceRepository) UpdateRecord(ctx context.Context, schema domain.SchemaName, name string, fields portsrepo.FieldMap) error {
	if !schema.IsInvoice() {
		return apperrors.NewValidationError(fmt.Sprintf("%q is not an invoice schema", schema))
	}
	if len(fields) == 0 {
		return nil
	}

	args := []any{string(schema), name}
	sets := make([]string, 0, len(fields)+1)
	for field, value := range fields {
		col, ok := invoiceColumns[field]
		if !ok || !col.writable {
			return apperrors.NewValidationError(fmt.Sprintf("field %q cannot be updated", field))
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col.name, len(args)))
	}
	sets = append(sets, "last_updated_at = NOW()")

	sql := fmt.Sprintf("UPDATE invoices SET %s WHERE schema_name = $1 AND name = $2;", strings.Join(sets, ", "))
	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", schema, name))
	}
	return nil
}
