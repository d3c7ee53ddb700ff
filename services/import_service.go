package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"saas-docvault-platform/internal/logger"
	"saas-docvault-platform/internal/store"
	"saas-docvault-platform/models"
)

// Request-level failures. These abort before any sheet is read and
// produce no ImportResult.
var (
	ErrNoFile              = errors.New("no file uploaded or file is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type, only .xlsx is accepted")
	ErrImportInProgress    = errors.New("an import is already running for this tenant")
)

const documentTitleRunes = 120

// ImportService drives the end-to-end import pipeline: workbook decode,
// per-sheet validation, row mapping, entity resolution and persistence.
// One instance is shared across requests; all per-import state lives in
// the importRun.
type ImportService struct {
	store     store.Store
	resolver  *EntityResolver
	validator *SheetValidator
	rdb       *redis.Client
	lockTTL   time.Duration
}

// NewImportService builds the service. rdb may be nil, in which case
// the per-tenant import lock is skipped; the duplicate-key retry in the
// resolver still guards catalog creation.
func NewImportService(s store.Store, rdb *redis.Client, lockTTL time.Duration) *ImportService {
	return &ImportService{
		store:     s,
		resolver:  NewEntityResolver(s),
		validator: NewSheetValidator(),
		rdb:       rdb,
		lockTTL:   lockTTL,
	}
}

// importRun carries the identity and target of one invocation.
type importRun struct {
	collectionID primitive.ObjectID
	tenantID     string
	userID       string
}

// Run executes a full import. Validation findings are collected into
// the result; only request-level and unexpected persistence failures
// are returned as errors.
func (s *ImportService) Run(ctx context.Context, file *multipart.FileHeader, collectionID primitive.ObjectID, tenantID, userID string) (*models.ImportResult, error) {
	wb, err := s.openWorkbook(file)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	unlock, err := s.acquireTenantLock(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	run := &importRun{collectionID: collectionID, tenantID: tenantID, userID: userID}
	result := models.NewImportResult()

	// Fixed sheet order: specifications first, then the reference
	// artifacts. Cross-sheet references therefore resolve against
	// previously imported links and files only.
	sheets := []struct {
		name     string
		importer rowImporter
	}{
		{SheetSpecifications, s.importSpecificationRow},
		{SheetLinks, s.importLinkRow},
		{SheetFiles, s.importFileRow},
	}
	for _, sheet := range sheets {
		sheetResult, err := s.processSheet(ctx, wb, sheet.name, run, sheet.importer)
		if err != nil {
			// Unexpected persistence failure: the whole request
			// fails. Rows committed so far stay in place.
			return nil, err
		}
		result.Merge(sheetResult)
	}

	result.AddMessage("Import finished: %d records processed, %d imported, %d failed",
		result.TotalRecords, result.SuccessfulRecords, result.FailedRecords)

	logger.Info("import finished",
		"tenant_id", tenantID,
		"collection_id", collectionID.Hex(),
		"total", result.TotalRecords,
		"failed", result.FailedRecords,
		"success", result.Success)

	return result, nil
}

// Validate runs the validator against all three sheets without
// resolving or persisting anything. Callers use it to preview errors
// before committing to a real import.
func (s *ImportService) Validate(ctx context.Context, file *multipart.FileHeader, collectionID primitive.ObjectID, tenantID string) (*models.ImportResult, error) {
	wb, err := s.openWorkbook(file)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	result := models.NewImportResult()

	if _, err := s.store.FindCollection(ctx, collectionID, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			result.AddError("Collection", "Collection not found", models.ErrorTypeResolution, 0)
		} else {
			return nil, err
		}
	}

	for _, sheet := range []string{SheetSpecifications, SheetLinks, SheetFiles} {
		acc, err := NewSheetAccessor(wb, sheet)
		if err != nil {
			result.AddError("Sheet",
				fmt.Sprintf("Required sheet '%s' is missing", sheet),
				models.ErrorTypeValidation, 0)
			continue
		}
		result.Merge(s.validator.ValidateSheet(acc, RequiredHeaders[sheet], sheet))
	}

	return result, nil
}

// openWorkbook enforces the preflight gate: a present, non-empty .xlsx
// upload. Nothing is parsed before these checks pass.
func (s *ImportService) openWorkbook(file *multipart.FileHeader) (*excelize.File, error) {
	if file == nil || file.Size == 0 {
		return nil, ErrNoFile
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".xlsx") {
		return nil, ErrUnsupportedFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	return wb, nil
}

// acquireTenantLock serializes imports per tenant so concurrent uploads
// cannot race each other through catalog creation. Returns the release
// function, or ErrImportInProgress when the lock is held.
func (s *ImportService) acquireTenantLock(ctx context.Context, tenantID string) (func(), error) {
	if s.rdb == nil {
		return func() {}, nil
	}

	key := "import:lock:" + tenantID
	ok, err := s.rdb.SetNX(ctx, key, "1", s.lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return nil, ErrImportInProgress
	}
	return func() {
		if err := s.rdb.Del(context.Background(), key).Err(); err != nil {
			logger.Warn("failed to release import lock", "tenant_id", tenantID, "error", err.Error())
		}
	}, nil
}

// rowImporter persists one mapped, validation-clean row.
type rowImporter func(ctx context.Context, run *importRun, row int, fields map[string]string, result *models.ImportResult) error

// processSheet validates the sheet, then walks its data rows: map,
// skip blank projections, count rows the validator already failed, and
// hand clean rows to the importer. Rows failed by the validator still
// count toward the total.
func (s *ImportService) processSheet(ctx context.Context, wb *excelize.File, sheet string, run *importRun, importRow rowImporter) (*models.ImportResult, error) {
	acc, err := NewSheetAccessor(wb, sheet)
	if err != nil {
		result := models.NewImportResult()
		result.AddError("Sheet",
			fmt.Sprintf("Required sheet '%s' is missing", sheet),
			models.ErrorTypeValidation, 0)
		return result, nil
	}

	result := s.validator.ValidateSheet(acc, RequiredHeaders[sheet], sheet)
	if result.HasRowError(0) {
		// Structural problem: do not attempt row processing.
		return result, nil
	}

	mappings := sheetMappings(sheet)
	for row := 2; row <= acc.RowCount(); row++ {
		fields := MapRow(acc, row, mappings)
		if len(fields) == 0 {
			continue // trailing blank line
		}
		result.TotalRecords++

		if result.HasRowError(row) {
			result.FailedRecords++
			continue
		}

		// Expected row problems are collected by the importer;
		// a returned error is an unexpected persistence failure.
		if err := importRow(ctx, run, row, fields, result); err != nil {
			logger.Error("import aborted by persistence failure",
				"sheet", sheet, "row", row, "error", err.Error())
			return nil, err
		}

		if result.HasRowError(row) {
			result.FailedRecords++
		} else {
			result.SuccessfulRecords++
		}
	}

	return result, nil
}

func sheetMappings(sheet string) []ColumnMapping {
	switch sheet {
	case SheetSpecifications:
		return specificationMappings
	case SheetLinks:
		return linkMappings
	default:
		return fileMappings
	}
}

// importSpecificationRow resolves every referenced catalog dimension
// and cross-sheet artifact, then creates the document aggregate: the
// Document, its first DocumentVersion and one junction per resolved
// entity.
func (s *ImportService) importSpecificationRow(ctx context.Context, run *importRun, row int, fields map[string]string, result *models.ImportResult) error {
	if _, err := s.store.FindCollection(ctx, run.collectionID, run.tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			result.AddError("Collection",
				fmt.Sprintf("Row %d: Collection not found", row),
				models.ErrorTypeResolution, row)
			return nil
		}
		return err
	}

	type junction struct {
		dimension  string
		entityID   primitive.ObjectID
		orderIndex int
	}
	var junctions []junction

	for _, cf := range catalogFields {
		name, ok := fields[cf.Field]
		if !ok {
			continue
		}
		entity, err := s.resolver.ResolveCatalogEntity(ctx, cf.Dimension, name, run.tenantID, run.userID)
		if err != nil {
			return err
		}
		junctions = append(junctions, junction{dimension: string(cf.Dimension), entityID: entity.ID})
	}

	for i, token := range SplitReferenceList(fields[FieldLinkRefs]) {
		link, err := s.resolver.LookupLink(ctx, token, run.tenantID)
		if errors.Is(err, store.ErrNotFound) {
			result.AddError(HeaderLinkRefs,
				fmt.Sprintf("Row %d: unknown link reference '%s'", row, token),
				models.ErrorTypeResolution, row)
			return nil
		}
		if err != nil {
			return err
		}
		junctions = append(junctions, junction{dimension: models.JunctionLinks, entityID: link.ID, orderIndex: i})
	}

	for i, token := range SplitReferenceList(fields[FieldFileRefs]) {
		file, err := s.resolver.LookupFile(ctx, token, run.tenantID)
		if errors.Is(err, store.ErrNotFound) {
			result.AddError(HeaderFileRefs,
				fmt.Sprintf("Row %d: unknown file reference '%s'", row, token),
				models.ErrorTypeResolution, row)
			return nil
		}
		if err != nil {
			return err
		}
		junctions = append(junctions, junction{dimension: models.JunctionFiles, entityID: file.ID, orderIndex: i})
	}

	description := fields[FieldDescription]
	now := time.Now()
	doc := &models.Document{
		CollectionID: run.collectionID,
		TenantID:     run.tenantID,
		Title:        truncateRunes(description, documentTitleRunes),
		Description:  description,
		Status:       models.DocumentStatusImported,
		Version:      1,
		CreatedBy:    run.userID,
		CreatedDate:  now,
	}

	docID, err := s.store.InsertDocument(ctx, doc)
	if err != nil {
		return err
	}

	if err := s.store.InsertDocumentVersion(ctx, &models.DocumentVersion{
		DocumentID:    docID,
		TenantID:      run.tenantID,
		VersionNumber: 1,
		Title:         doc.Title,
		Description:   doc.Description,
		Status:        doc.Status,
		CreatedBy:     run.userID,
		CreatedDate:   now,
	}); err != nil {
		return err
	}

	for _, j := range junctions {
		if err := s.store.InsertJunction(ctx, &models.DocumentJunction{
			DocumentID: docID,
			Dimension:  j.dimension,
			EntityID:   j.entityID,
			OrderIndex: j.orderIndex,
			TenantID:   run.tenantID,
		}); err != nil {
			return err
		}
	}

	result.AddMessage("Row %d: imported specification '%s'", row, doc.Title)
	return nil
}

// importLinkRow gets or creates the link artifact described by one row
// of the links sheet.
func (s *ImportService) importLinkRow(ctx context.Context, run *importRun, row int, fields map[string]string, result *models.ImportResult) error {
	link, err := s.resolver.ResolveLink(ctx, fields[FieldExternalID], fields[FieldTitle], fields[FieldURL], run.tenantID, run.userID)
	if err != nil {
		return err
	}
	result.AddMessage("Row %d: registered link '%s'", row, link.ExternalID)
	return nil
}

// importFileRow gets or creates the file artifact described by one row
// of the files sheet.
func (s *ImportService) importFileRow(ctx context.Context, run *importRun, row int, fields map[string]string, result *models.ImportResult) error {
	file, err := s.resolver.ResolveFile(ctx, fields[FieldExternalID], fields[FieldTitle], fields[FieldFilePath], fields[FieldFileType], run.tenantID, run.userID)
	if err != nil {
		return err
	}
	result.AddMessage("Row %d: registered file '%s'", row, file.ExternalID)
	return nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
