package importapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/inventory"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	csvimport "github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/import"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CSV column headers for the item SYNC import
const (
	colItemCode  = "Item Code"
	colItemName  = "Item Name"
	colItemGroup = "Item Group"
	colBrand     = "Brand"
	colRate      = "Rate"
	colQty       = "Qty"
	colWarehouse = "Warehouse"
	colPublish   = "Publish In Website"
)

// ItemSyncResult summarizes a SYNC import run. Messages carry the
// human-readable per-row outcomes (price rewrites, stock updates,
// publication skips).
type ItemSyncResult struct {
	TotalRows       int                  `json:"total_rows"`
	Inserted        int                  `json:"inserted"`
	Reused          int                  `json:"reused"`
	PricesWritten   int                  `json:"prices_written"`
	StockReconciled int                  `json:"stock_reconciled"`
	Published       int                  `json:"published"`
	ErrorRows       int                  `json:"error_rows"`
	Messages        []string             `json:"messages"`
	Errors          []csvimport.RowError `json:"errors,omitempty"`
	IsTruncated     bool                 `json:"is_truncated,omitempty"`
	TotalErrors     int                  `json:"total_errors,omitempty"`
}

// ItemSyncService implements the SYNC data import for items: upsert the
// item, always rewrite the selling price, reconcile stock against the
// imported absolute count, and optionally publish to the website.
type ItemSyncService struct {
	itemRepo        catalog.ItemRepository
	websiteItemRepo catalog.WebsiteItemRepository
	priceRepo       pricing.ItemPriceRepository
	settingsRepo    pricing.SettingsRepository
	binRepo         inventory.BinRepository
	stockRecRepo    inventory.StockReconciliationRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewItemSyncService creates a new ItemSyncService
func NewItemSyncService(
	itemRepo catalog.ItemRepository,
	websiteItemRepo catalog.WebsiteItemRepository,
	priceRepo pricing.ItemPriceRepository,
	settingsRepo pricing.SettingsRepository,
	binRepo inventory.BinRepository,
	stockRecRepo inventory.StockReconciliationRepository,
	logger *zap.Logger,
) *ItemSyncService {
	return &ItemSyncService{
		itemRepo:        itemRepo,
		websiteItemRepo: websiteItemRepo,
		priceRepo:       priceRepo,
		settingsRepo:    settingsRepo,
		binRepo:         binRepo,
		stockRecRepo:    stockRecRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// Sync runs the SYNC import over a CSV payload. Row failures are collected
// and do not abort the run.
func (s *ItemSyncService) Sync(ctx context.Context, data []byte) (*ItemSyncResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "import", "item_sync")
	defer span.End()

	parser, err := csvimport.ParseFromBytes(data)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	if missing := parser.ValidateHeaders([]string{colItemCode}); len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_HEADER",
			fmt.Sprintf("CSV is missing required column(s): %v", missing))
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrImportRows, len(rows))

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	priceList := settings.ResolvePriceList()

	result := &ItemSyncResult{Messages: []string{}}
	errorsCol := csvimport.NewErrorCollection(100)

	for _, row := range rows {
		result.TotalRows++
		if err := s.syncRow(ctx, row, settings, priceList, result); err != nil {
			result.ErrorRows++
			errorsCol.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportRowFailed, err.Error()))
			s.logger.Warn("item sync row failed",
				zap.Int("line", row.LineNumber),
				zap.Error(err),
			)
		}
	}

	result.Errors = errorsCol.Errors()
	result.IsTruncated = errorsCol.IsTruncated()
	result.TotalErrors = errorsCol.TotalCount()

	s.logger.Info("item sync import finished",
		zap.Int("total_rows", result.TotalRows),
		zap.Int("inserted", result.Inserted),
		zap.Int("reused", result.Reused),
		zap.Int("prices_written", result.PricesWritten),
		zap.Int("stock_reconciled", result.StockReconciled),
		zap.Int("published", result.Published),
		zap.Int("error_rows", result.ErrorRows),
	)

	return result, nil
}

// syncRow applies one CSV row: upsert item, rewrite price, reconcile stock,
// optional publish
func (s *ItemSyncService) syncRow(ctx context.Context, row *csvimport.Row, settings *pricing.StorefrontSettings, priceList string, result *ItemSyncResult) error {
	code := row.Get(colItemCode)
	if code == "" {
		return fmt.Errorf("'%s' is required", colItemCode)
	}

	item, err := s.upsertItem(ctx, row, code, result)
	if err != nil {
		return err
	}

	if rawRate := row.Get(colRate); rawRate != "" {
		if err := s.writePrice(ctx, code, rawRate, priceList, settings.DefaultCurrency, result); err != nil {
			return err
		}
	}

	rawQty := row.Get(colQty)
	warehouse := row.Get(colWarehouse)
	if rawQty != "" && warehouse != "" {
		if err := s.reconcileStock(ctx, code, warehouse, rawQty, settings.DefaultCompany, result); err != nil {
			return err
		}
	}

	if catalog.ParsePublishFlag(row.Get(colPublish)) {
		s.publishItem(ctx, item, result)
	}

	return nil
}

// upsertItem inserts a missing item or reuses the existing one, never
// duplicating
func (s *ItemSyncService) upsertItem(ctx context.Context, row *csvimport.Row, code string, result *ItemSyncResult) (*catalog.Item, error) {
	item, err := s.itemRepo.FindByCode(ctx, code)
	if err == nil {
		result.Reused++
		return item, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	name := row.GetOrDefault(colItemName, code)
	item, err = catalog.NewItem(code, name)
	if err != nil {
		return nil, err
	}
	item.ItemGroup = row.Get(colItemGroup)
	item.Brand = row.Get(colBrand)

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	item.ClearDomainEvents()
	result.Inserted++
	result.Messages = append(result.Messages, fmt.Sprintf("Item %s created", code))
	return item, nil
}

// writePrice always rewrites the selling rate in the resolved price list,
// creating the row when missing
func (s *ItemSyncService) writePrice(ctx context.Context, code, rawRate, priceList, currency string, result *ItemSyncResult) error {
	rate, err := decimal.NewFromString(rawRate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", rawRate, err)
	}

	price, err := s.priceRepo.FindSelling(ctx, code, priceList)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		price, err = pricing.NewItemPrice(code, priceList, rate, currency)
		if err != nil {
			return err
		}
		if err := s.priceRepo.Save(ctx, price); err != nil {
			return err
		}
		result.PricesWritten++
		result.Messages = append(result.Messages,
			fmt.Sprintf("Item Price created for %s in %s: %s", code, priceList, rate.String()))
		return nil
	}

	previous := price.Rate
	if err := price.SetRate(rate); err != nil {
		return err
	}
	if err := s.priceRepo.Save(ctx, price); err != nil {
		return err
	}
	result.PricesWritten++
	result.Messages = append(result.Messages,
		fmt.Sprintf("Item Price updated for %s in %s: %s (was %s)", code, priceList, rate.String(), previous.String()))
	return nil
}

// reconcileStock submits a stock reconciliation when the bin qty differs
// from the imported absolute count. Equal quantities write nothing.
func (s *ItemSyncService) reconcileStock(ctx context.Context, code, warehouse, rawQty, company string, result *ItemSyncResult) error {
	qty, err := decimal.NewFromString(rawQty)
	if err != nil {
		return fmt.Errorf("invalid qty %q: %w", rawQty, err)
	}

	current, err := s.binRepo.Qty(ctx, code, warehouse)
	if err != nil {
		return err
	}
	if current.Equal(qty) {
		return nil
	}

	if company == "" {
		return fmt.Errorf("company is required to reconcile stock for %s; set the default company in storefront settings", code)
	}

	rec, err := inventory.NewStockReconciliation(company, s.now())
	if err != nil {
		return err
	}
	if err := rec.AddLine(code, warehouse, qty); err != nil {
		return err
	}
	if err := rec.Submit(); err != nil {
		return err
	}
	if err := s.stockRecRepo.SubmitAndApply(ctx, rec); err != nil {
		return err
	}

	result.StockReconciled++
	result.Messages = append(result.Messages,
		fmt.Sprintf("Stock updated for %s in %s: %s (was %s)", code, warehouse, qty.String(), current.String()))
	return nil
}

// publishItem creates the website item when missing. Failures are reported
// per row and never fail the import.
func (s *ItemSyncService) publishItem(ctx context.Context, item *catalog.Item, result *ItemSyncResult) {
	exists, err := s.websiteItemRepo.ExistsByItemCode(ctx, item.Code)
	if err != nil {
		result.Messages = append(result.Messages,
			fmt.Sprintf("Could not check website item for %s: %s", item.Code, err))
		return
	}
	if exists {
		return
	}

	websiteItem, err := catalog.NewWebsiteItemFromItem(item)
	if err == nil {
		err = s.websiteItemRepo.Save(ctx, websiteItem)
	}
	if err != nil {
		s.logger.Warn("failed to publish item during sync import",
			zap.String("item_code", item.Code),
			zap.Error(err),
		)
		result.Messages = append(result.Messages,
			fmt.Sprintf("Could not publish %s to website: %s", item.Code, err))
		return
	}

	result.Published++
	result.Messages = append(result.Messages,
		fmt.Sprintf("Item %s published to website", item.Code))
}

// loadSettings returns the storefront settings, or an empty settings row
// when the site has not been bootstrapped
func (s *ItemSyncService) loadSettings(ctx context.Context) (*pricing.StorefrontSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &pricing.StorefrontSettings{}, nil
		}
		return nil, err
	}
	return settings, nil
}
