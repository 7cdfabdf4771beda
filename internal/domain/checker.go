package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"typelint.dev/pkg/typelint/internal/adapter"
	m "typelint.dev/pkg/typelint/internal/model"
)

// DefaultAggregatorName is the file whose `export * from` lines are verified.
const DefaultAggregatorName = "index.ts"

var (
	importPattern      = regexp.MustCompile(`import\s*\{([^}]+)\}\s*from\s*['"][^'"]+['"]`)
	exportNamePattern  = regexp.MustCompile(`export\s+(?:interface|enum|type|class)\s+(\w+)`)
	duplicatePattern   = regexp.MustCompile(`export\s+(interface|enum|type)\s+(\w+)`)
	namingPattern      = regexp.MustCompile(`export\s+(interface|enum)\s+([a-z][a-zA-Z0-9]*)`)
	pascalCasePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	reExportPattern    = regexp.MustCompile(`export\s+\*\s+from\s+['"]([^'"]+)['"]`)
	importAliasPattern = regexp.MustCompile(`^\S+\s+as\s+(\S+)$`)
)

// CheckArgs configures one consistency check run.
type CheckArgs struct {
	Root           m.Path
	RequiredFiles  []string
	AggregatorName string
	// DirectoryIndex lets `export * from './dir'` resolve to dir/index.ts.
	DirectoryIndex bool
	Exclude        []string
	Strict         bool
}

// Checker runs the six consistency checks over one tree of declaration files.
type Checker interface {
	Check(ctx context.Context, args CheckArgs) (m.Report, error)
}

type checker struct {
	fsAdapter adapter.SourceFSAdapter
	tsAdapter adapter.TypeScriptAdapter
}

// NewChecker constructs a Checker. The TypeScript adapter is only used for
// strict syntax checks and may be nil when strict mode is never requested.
func NewChecker(fsAdapter adapter.SourceFSAdapter, tsAdapter adapter.TypeScriptAdapter) Checker {
	return &checker{
		fsAdapter: fsAdapter,
		tsAdapter: tsAdapter,
	}
}

type sourceFile struct {
	path    m.Path
	rel     m.Path
	content string
}

// checkContext accumulates findings across checks for one run.
type checkContext struct {
	ctx    context.Context
	args   CheckArgs
	report *m.Report
	files  []sourceFile
}

func (c *checkContext) issue(category m.Category, message string, file m.Path) {
	c.report.Issues = append(c.report.Issues, m.Finding{Category: category, Message: message, FilePath: file})
}

func (c *checkContext) warn(category m.Category, message string, file m.Path) {
	c.report.Warnings = append(c.report.Warnings, m.Finding{Category: category, Message: message, FilePath: file})
}

func (ch *checker) Check(ctx context.Context, args CheckArgs) (m.Report, error) {
	if args.AggregatorName == "" {
		args.AggregatorName = DefaultAggregatorName
	}

	report := m.Report{
		Root:     args.Root,
		Issues:   []m.Finding{},
		Warnings: []m.Finding{},
	}

	exists, err := ch.fsAdapter.Exists(ctx, args.Root)
	if err != nil {
		return report, fmt.Errorf("stat root %s: %w", args.Root, err)
	}

	if !exists {
		return report, errors.WithHint(
			errors.Wrapf(ErrRootNotFound, "%s", args.Root),
			"set check.root in typelint.yaml or pass --root",
		)
	}

	cc := &checkContext{ctx: ctx, args: args, report: &report}

	ch.checkRequiredFiles(cc)

	if err := ch.loadSourceFiles(cc); err != nil {
		return report, err
	}

	if err := ch.checkSyntax(cc); err != nil {
		return report, err
	}

	ch.checkDuplicates(cc)
	ch.checkUnusedImports(cc)
	ch.checkNaming(cc)

	if err := ch.checkAggregators(cc); err != nil {
		return report, err
	}

	slog.Info("consistency check finished",
		"root", args.Root,
		"files", len(cc.files),
		"issues", len(report.Issues),
		"warnings", len(report.Warnings))

	return report, nil
}

func (ch *checker) checkRequiredFiles(cc *checkContext) {
	for _, required := range cc.args.RequiredFiles {
		path := ch.fsAdapter.JoinPath(cc.ctx, string(cc.args.Root), required)

		exists, err := ch.fsAdapter.Exists(cc.ctx, path)
		if err != nil {
			slog.Error("failed to stat required file", "path", path, "error", err)
			cc.issue(m.CategoryFileReadError, fmt.Sprintf("Error reading file: %v", err), m.Path(required))

			continue
		}

		if !exists {
			cc.issue(m.CategoryMissingFile, "Required file missing: "+required, m.Path(required))
		}
	}
}

// loadSourceFiles reads every type file once. A file that cannot be read is
// reported and left out of the per-file checks.
func (ch *checker) loadSourceFiles(cc *checkContext) error {
	include := []string{"*.ts"}
	if !strings.HasSuffix(cc.args.AggregatorName, ".ts") {
		include = append(include, cc.args.AggregatorName)
	}

	exclude := append([]string{"*.d.ts"}, cc.args.Exclude...)

	matcher, err := adapter.NewFileMatcher(include, exclude)
	if err != nil {
		return fmt.Errorf("build file matcher: %w", err)
	}

	paths, err := ch.fsAdapter.FindFiles(cc.ctx, cc.args.Root, matcher)
	if err != nil {
		return fmt.Errorf("walk %s: %w", cc.args.Root, err)
	}

	for _, path := range paths {
		rel, err := ch.fsAdapter.RelPath(cc.ctx, cc.args.Root, path)
		if err != nil {
			rel = path
		}

		content, err := ch.fsAdapter.ReadFile(cc.ctx, path)
		if err != nil {
			if cc.ctx.Err() != nil {
				return cc.ctx.Err()
			}

			slog.Error("failed to read type file", "path", path, "error", err)
			cc.issue(m.CategoryFileReadError, fmt.Sprintf("Error reading file: %v", err), rel)

			continue
		}

		cc.files = append(cc.files, sourceFile{path: path, rel: rel, content: string(content)})
	}

	return nil
}

func (ch *checker) checkSyntax(cc *checkContext) error {
	for _, file := range cc.files {
		if !cc.args.Strict {
			if !balanced(file.content) {
				cc.issue(m.CategorySyntaxError, "Invalid TypeScript syntax", file.rel)
			}

			continue
		}

		if ch.tsAdapter == nil {
			return errors.New("strict mode requested without a TypeScript parser")
		}

		problem, err := ch.tsAdapter.CheckSyntax(cc.ctx, []byte(file.content))
		if err != nil {
			if cc.ctx.Err() != nil {
				return cc.ctx.Err()
			}

			cc.issue(m.CategorySyntaxError, fmt.Sprintf("Invalid TypeScript syntax: %v", err), file.rel)

			continue
		}

		if problem != nil {
			cc.issue(m.CategorySyntaxError,
				fmt.Sprintf("Invalid TypeScript syntax: parse error at line %d", problem.Line), file.rel)
		}
	}

	return nil
}

// balanced reports whether braces and parentheses occur in equal numbers.
// Order is not considered.
func balanced(content string) bool {
	return strings.Count(content, "{") == strings.Count(content, "}") &&
		strings.Count(content, "(") == strings.Count(content, ")")
}

func (ch *checker) checkDuplicates(cc *checkContext) {
	for _, file := range cc.files {
		seen := make(map[string]struct{})

		for _, match := range duplicatePattern.FindAllStringSubmatch(file.content, -1) {
			name := match[2]
			if _, dup := seen[name]; dup {
				cc.issue(m.CategoryDuplicateDefinition, "Duplicate type definition: "+name, file.rel)

				continue
			}

			seen[name] = struct{}{}
		}
	}
}

func (ch *checker) checkUnusedImports(cc *checkContext) {
	for _, file := range cc.files {
		exported := make(map[string]struct{})
		for _, match := range exportNamePattern.FindAllStringSubmatch(file.content, -1) {
			exported[match[1]] = struct{}{}
		}

		body := importPattern.ReplaceAllString(file.content, "")

		for _, name := range importedNames(file.content) {
			if _, ok := exported[name]; ok {
				continue
			}

			if !strings.Contains(body, name) {
				cc.warn(m.CategoryUnusedImport, "Unused import: "+name, file.rel)
			}
		}
	}
}

// importedNames lists local names bound by named imports, first occurrence
// first, without repeats.
func importedNames(content string) []string {
	var names []string

	seen := make(map[string]struct{})

	for _, match := range importPattern.FindAllStringSubmatch(content, -1) {
		for _, part := range strings.Split(match[1], ",") {
			name := strings.TrimSpace(part)
			name = strings.TrimSpace(strings.TrimPrefix(name, "type "))

			if alias := importAliasPattern.FindStringSubmatch(name); alias != nil {
				name = alias[1]
			}

			if name == "" {
				continue
			}

			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

func (ch *checker) checkNaming(cc *checkContext) {
	for _, file := range cc.files {
		for _, match := range namingPattern.FindAllStringSubmatch(file.content, -1) {
			kind, name := match[1], match[2]
			if pascalCasePattern.MatchString(name) {
				continue
			}

			label := "Interface"
			if kind == "enum" {
				label = "Enum"
			}

			cc.issue(m.CategoryNamingConvention, fmt.Sprintf("%s should be PascalCase: %s", label, name), file.rel)
		}
	}
}

func (ch *checker) checkAggregators(cc *checkContext) error {
	for _, file := range cc.files {
		if filepath.Base(string(file.path)) != cc.args.AggregatorName {
			continue
		}

		dir := filepath.Dir(string(file.path))

		for _, match := range reExportPattern.FindAllStringSubmatch(file.content, -1) {
			target := match[1]

			found, err := ch.reExportExists(cc, dir, target)
			if err != nil {
				return err
			}

			if !found {
				cc.issue(m.CategoryMissingExport, "Exported file does not exist: "+target, file.rel)
			}
		}
	}

	return nil
}

func (ch *checker) reExportExists(cc *checkContext, dir, target string) (bool, error) {
	candidates := []m.Path{ch.fsAdapter.JoinPath(cc.ctx, dir, target+".ts")}
	if cc.args.DirectoryIndex {
		candidates = append(candidates, ch.fsAdapter.JoinPath(cc.ctx, dir, target, cc.args.AggregatorName))
	}

	for _, candidate := range candidates {
		exists, err := ch.fsAdapter.Exists(cc.ctx, candidate)
		if err != nil {
			return false, fmt.Errorf("stat %s: %w", candidate, err)
		}

		if exists {
			return true, nil
		}
	}

	return false, nil
}
