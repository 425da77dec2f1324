package eadsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/archive"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/hierarchy"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/images"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/mets"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/parser"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/store"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/title"
	"golang.org/x/sync/errgroup"
)

// Importer runs the two import phases with one selected template.
type Importer struct {
	tmpl    *config.Template
	opts    Options
	logger  *slog.Logger
	archive *archive.Memory
}

// RecordSet is the outcome of phase 1.
type RecordSet struct {
	// Database is the name of the archive database the tree was built in.
	Database string `json:"database"`
	// Template is the name of the template that was applied.
	Template string           `json:"template"`
	Records  []models.Record `json:"records"`
	Nodes    int             `json:"nodes"`
	Skipped  int             `json:"skipped_rows"`
	Warnings []string        `json:"warnings,omitempty"`
}

// New selects the template for opts.Template from desc.
func New(desc *config.Descriptor, opts Options) (*Importer, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: no descriptor", ErrConfig)
	}
	name := opts.Template
	if name == "" {
		name = config.Wildcard
	}
	tmpl, err := desc.Template(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	logger := opts.logger().With("component", "importer")
	schema := archive.DefaultSchema().WithOverrides(tmpl.EadFields)
	return &Importer{
		tmpl:    tmpl,
		opts:    opts,
		logger:  logger,
		archive: archive.NewMemory(schema, tmpl.NodeTypes),
	}, nil
}

// Template returns the selected template.
func (im *Importer) Template() *config.Template { return im.tmpl }

// Archive returns the archive the tree is built in.
func (im *Importer) Archive() *archive.Memory { return im.archive }

// GenerateRecords reads the spreadsheet at path, rebuilds the archive tree
// and returns one record per process row. The tree is saved to the SQLite
// store when Options.StorePath is set.
func (im *Importer) GenerateRecords(ctx context.Context, path string) (*RecordSet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	db := im.tmpl.Database
	if db == "" {
		db = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	rec, err := hierarchy.NewReconstructor(im.archive, im.tmpl, im.opts.logger())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := im.archive.CreateDatabase(db); err != nil {
		return nil, fmt.Errorf("create database %q: %w", db, err)
	}

	sheet, err := parser.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	header, rows := parser.SplitRows(sheet.Rows, im.tmpl.HeaderRow, im.tmpl.DataStart())
	im.logger.Debug("sheet read",
		"book", sheet.BookName,
		"sheet", sheet.SheetName,
		"columns", len(header),
		"data_rows", len(rows),
	)

	res, err := rec.Reconstruct(rows, header)
	if err != nil {
		return nil, err
	}
	refs := append(im.tmpl.ColumnRefs(), title.ColumnRefs(im.tmpl.Metadata.Title)...)
	for _, ref := range parser.Unresolved(header, refs) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("column %q not found in header", ref))
	}
	for _, w := range res.Warnings {
		im.logger.Warn(w)
	}

	if im.opts.ShouldPersist() {
		if err := im.persist(ctx, db, res.Root); err != nil {
			return nil, err
		}
	}

	return &RecordSet{
		Database: db,
		Template: im.tmpl.Name,
		Records:  res.Records,
		Nodes:    res.Nodes,
		Skipped:  res.Skipped,
		Warnings: res.Warnings,
	}, nil
}

func (im *Importer) persist(ctx context.Context, db string, root *archive.Node) error {
	s, err := store.Open(ctx, im.opts.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := s.Save(ctx, db, root); err != nil {
		s.Close()
		return fmt.Errorf("save tree %q: %w", db, err)
	}
	im.logger.Info("tree saved", "database", db, "store", im.opts.StorePath)
	return s.Close()
}

// GenerateFiles writes the document and copies the images of every record.
// Records are processed in parallel; a failing record never stops the others
// and its problems are reported on its result. Results keep record order.
func (im *Importer) GenerateFiles(ctx context.Context, records []models.Record) ([]models.ImportResult, error) {
	if err := os.MkdirAll(im.opts.ImportFolder, 0o755); err != nil {
		return nil, fmt.Errorf("create import folder: %w", err)
	}

	idx, err := images.BuildIndex(im.tmpl.ImageRoot)
	if err != nil {
		return nil, fmt.Errorf("index images: %w", err)
	}
	for _, name := range idx.Duplicates {
		im.logger.Warn("image folder name used more than once", "name", name)
	}
	im.logger.Debug("image folders indexed", "root", im.tmpl.ImageRoot, "folders", idx.Len())

	gen := &fileGenerator{
		folder: im.opts.ImportFolder,
		index:  idx,
		rules:  images.RulesFrom(im.tmpl.ImageRules),
		title: title.Generator{
			Separator:   im.tmpl.Metadata.Separator,
			LengthLimit: im.tmpl.Metadata.LengthLimit,
		},
		recipe: im.tmpl.Metadata.Title,
		emitter: &mets.Emitter{
			Prefs:       im.opts.Prefs,
			Template:    im.tmpl,
			Collections: im.opts.Collections,
			Writer:      im.opts.writer(),
		},
	}

	results := gen.titles(records)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.opts.WorkerCount())
	for i, rec := range records {
		if results[i].Failed() {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gen.generate(rec, &results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
			for _, err := range r.Errors {
				im.logger.Warn("record problem", "record", r.RecordID, "error", err)
			}
		}
	}
	im.logger.Info("files generated", "records", len(results), "failed", failed)
	return results, nil
}

type fileGenerator struct {
	folder  string
	index   *images.Index
	rules   images.Rules
	title   title.Generator
	recipe  []string
	emitter *mets.Emitter
}

// titles generates the process title of every record. Records whose title
// is empty or was already taken by an earlier record fail at the title stage
// so that no two records write the same document or image folder.
func (g *fileGenerator) titles(records []models.Record) []models.ImportResult {
	results := make([]models.ImportResult, len(records))
	owner := make(map[string]string, len(records))
	for i, rec := range records {
		res := &results[i]
		res.RecordID = rec.ID
		res.ProcessTitle = g.title.Generate(g.recipe, rec.Snapshot)
		switch prev, taken := owner[res.ProcessTitle]; {
		case res.ProcessTitle == "":
			res.Errors = append(res.Errors, NewRecordError(rec.ID, StageTitle, ErrEmptyTitle))
		case taken:
			res.Errors = append(res.Errors, NewRecordError(rec.ID, StageTitle,
				fmt.Errorf("%w: %q already used by record %q", ErrDuplicateTitle, res.ProcessTitle, prev)))
		default:
			owner[res.ProcessTitle] = rec.ID
		}
	}
	return results
}

// generate writes the document and copies the images of rec into res, whose
// process title is already set.
func (g *fileGenerator) generate(rec models.Record, res *models.ImportResult) {
	manifest, err := images.Resolve(g.index, rec.ID, g.rules)
	if err != nil {
		res.Errors = append(res.Errors, NewRecordError(rec.ID, StageImages, err))
	}

	res.DocumentPath = filepath.Join(g.folder, res.ProcessTitle+".xml")
	problems, err := g.emitter.Emit(rec, res.DocumentPath)
	for _, p := range problems {
		res.Errors = append(res.Errors, NewRecordError(rec.ID, StageDocument, p))
	}
	if err != nil {
		res.DocumentPath = ""
		res.Errors = append(res.Errors, NewRecordError(rec.ID, StageDocument, err))
		return
	}

	if len(manifest.Files) > 0 {
		res.ImageDir = images.MediaDir(g.folder, res.ProcessTitle)
		copied, err := images.Copy(manifest, res.ImageDir)
		res.Images = copied
		if err != nil {
			res.Errors = append(res.Errors, NewRecordError(rec.ID, StageCopy, err))
		}
	}
}

// Run executes both phases.
func (im *Importer) Run(ctx context.Context, path string) (*RecordSet, []models.ImportResult, error) {
	set, err := im.GenerateRecords(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	results, err := im.GenerateFiles(ctx, set.Records)
	return set, results, err
}
