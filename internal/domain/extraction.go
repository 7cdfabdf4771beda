package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"typelint.dev/pkg/typelint/internal/adapter"
	m "typelint.dev/pkg/typelint/internal/model"
)

// ExtractArgs configures a cross-tree extraction.
type ExtractArgs struct {
	TreeA   m.Tree
	TreeB   m.Tree
	Exclude []string
	Strict  bool
	// DocsPath, when set, receives the markdown listing of extracted types.
	DocsPath       m.Path
	FailOnConflict bool
}

// Extractor scans two trees for role files and compares what they declare.
type Extractor interface {
	ScanTree(ctx context.Context, tree m.Tree, exclude []string, strict bool) ([]m.FileRecord, error)
	Extract(ctx context.Context, args ExtractArgs) (m.Extraction, error)
}

type extractor struct {
	fsAdapter adapter.SourceFSAdapter
	tsAdapter adapter.TypeScriptAdapter
}

// NewExtractor constructs an Extractor. The TypeScript adapter backs strict
// mode and may be nil otherwise.
func NewExtractor(fsAdapter adapter.SourceFSAdapter, tsAdapter adapter.TypeScriptAdapter) Extractor {
	return &extractor{
		fsAdapter: fsAdapter,
		tsAdapter: tsAdapter,
	}
}

// Extract scans both trees concurrently. The first failure cancels the other
// scan and is returned.
func (e *extractor) Extract(ctx context.Context, args ExtractArgs) (m.Extraction, error) {
	extraction := m.Extraction{TreeA: args.TreeA, TreeB: args.TreeB}

	for _, tree := range []m.Tree{args.TreeA, args.TreeB} {
		if err := e.requireTree(ctx, tree); err != nil {
			return extraction, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		files, err := e.ScanTree(gctx, args.TreeA, args.Exclude, args.Strict)
		if err != nil {
			return fmt.Errorf("scan %s: %w", args.TreeA.Label, err)
		}

		extraction.FilesA = files

		return nil
	})

	g.Go(func() error {
		files, err := e.ScanTree(gctx, args.TreeB, args.Exclude, args.Strict)
		if err != nil {
			return fmt.Errorf("scan %s: %w", args.TreeB.Label, err)
		}

		extraction.FilesB = files

		return nil
	})

	if err := g.Wait(); err != nil {
		return extraction, err
	}

	extraction.Conflicts = AnalyzeConflicts(extraction.FilesA, extraction.FilesB, args.TreeA.Label, args.TreeB.Label)

	slog.Info("extraction finished",
		"filesA", len(extraction.FilesA),
		"filesB", len(extraction.FilesB),
		"conflicts", len(extraction.Conflicts))

	return extraction, nil
}

func (e *extractor) requireTree(ctx context.Context, tree m.Tree) error {
	exists, err := e.fsAdapter.Exists(ctx, tree.Root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", tree.Root, err)
	}

	if !exists {
		return errors.WithHintf(
			errors.Wrapf(ErrSourceTreeNotFound, "%s tree %s", tree.Label, tree.Root),
			"set extract.%s.root in typelint.yaml", originKey(tree.Origin),
		)
	}

	return nil
}

func originKey(origin m.Origin) string {
	if origin == m.OriginB {
		return "b"
	}

	return "a"
}

// ScanTree returns one record per role file under the tree root, in lexical
// walk order. Any read error aborts the scan.
func (e *extractor) ScanTree(ctx context.Context, tree m.Tree, exclude []string, strict bool) ([]m.FileRecord, error) {
	matcher, err := adapter.NewFileMatcher(tree.Patterns, exclude)
	if err != nil {
		return nil, fmt.Errorf("build file matcher: %w", err)
	}

	paths, err := e.fsAdapter.FindFiles(ctx, tree.Root, matcher)
	if err != nil {
		return nil, err
	}

	records := make([]m.FileRecord, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := e.fsAdapter.ReadFile(ctx, path)
		if err != nil {
			slog.Error("failed to read role file", "path", path, "error", err)
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		declarations, err := e.declarations(ctx, content, strict)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		rel, err := e.fsAdapter.RelPath(ctx, tree.Root, path)
		if err != nil {
			return nil, err
		}

		slog.Debug("scanned role file", "origin", tree.Origin, "path", rel, "declarations", len(declarations))

		records = append(records, m.FileRecord{
			Path:         path,
			RelPath:      rel,
			Origin:       tree.Origin,
			Declarations: declarations,
		})
	}

	return records, nil
}

func (e *extractor) declarations(ctx context.Context, content []byte, strict bool) ([]m.DeclarationRecord, error) {
	if !strict {
		return ExtractAll(string(content)), nil
	}

	if e.tsAdapter == nil {
		return nil, errors.New("strict mode requested without a TypeScript parser")
	}

	return e.tsAdapter.ExtractDeclarations(ctx, content)
}
