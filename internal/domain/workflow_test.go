package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"typelint.dev/pkg/typelint/internal/adapter"
	"typelint.dev/pkg/typelint/internal/controller"
	controllermocks "typelint.dev/pkg/typelint/internal/controller/mocks"
	"typelint.dev/pkg/typelint/internal/domain"
	domainmocks "typelint.dev/pkg/typelint/internal/domain/mocks"
	m "typelint.dev/pkg/typelint/internal/model"
)

type workflowFixture struct {
	ui        *controllermocks.MockUI
	checker   *domainmocks.MockChecker
	extractor *domainmocks.MockExtractor
	releaser  *domainmocks.MockReleaser
	workflow  domain.Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		ui:        controllermocks.NewMockUI(t),
		checker:   domainmocks.NewMockChecker(t),
		extractor: domainmocks.NewMockExtractor(t),
		releaser:  domainmocks.NewMockReleaser(t),
	}

	f.workflow = domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), f.ui, f.checker, f.extractor, f.releaser)

	return f
}

func TestWorkflow_Check(t *testing.T) {
	args := domain.CheckArgs{Root: "src"}

	t.Run("issues fail the run", func(t *testing.T) {
		f := newWorkflowFixture(t)
		report := m.Report{Root: "src", Issues: []m.Finding{{Category: m.CategoryMissingFile, Message: "Required file missing: b.ts"}}}

		f.checker.On("Check", mock.Anything, args).Return(report, nil).Once()
		f.ui.On("DisplayReport", mock.Anything, report, mock.Anything).Return(nil).Once()

		err := f.workflow.Check(context.Background(), args, domain.OutputArgs{})
		assert.ErrorIs(t, err, domain.ErrIssuesFound)
	})

	t.Run("warnings alone pass", func(t *testing.T) {
		f := newWorkflowFixture(t)
		report := m.Report{Root: "src", Warnings: []m.Finding{{Category: m.CategoryUnusedImport, Message: "Unused import: X"}}}

		f.checker.On("Check", mock.Anything, args).Return(report, nil).Once()
		f.ui.On("DisplayReport", mock.Anything, report, mock.Anything).Return(nil).Once()

		assert.NoError(t, f.workflow.Check(context.Background(), args, domain.OutputArgs{}))
	})

	t.Run("passes display options", func(t *testing.T) {
		f := newWorkflowFixture(t)
		report := m.Report{Root: "src"}

		f.checker.On("Check", mock.Anything, args).Return(report, nil).Once()
		f.ui.On("DisplayReport", mock.Anything, report, mock.MatchedBy(func(options []controller.DisplayOption) bool {
			return len(options) == 2
		})).Return(nil).Once()

		output := domain.OutputArgs{Format: controller.FormatJSON, Interactive: true}
		assert.NoError(t, f.workflow.Check(context.Background(), args, output))
	})

	t.Run("checker failure skips display", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.checker.On("Check", mock.Anything, args).Return(m.Report{}, domain.ErrRootNotFound).Once()

		err := f.workflow.Check(context.Background(), args, domain.OutputArgs{})
		assert.ErrorIs(t, err, domain.ErrRootNotFound)
	})
}

func TestWorkflow_Extract(t *testing.T) {
	extraction := m.Extraction{
		TreeA: m.Tree{Label: "backend"},
		TreeB: m.Tree{Label: "frontend"},
		FilesA: []m.FileRecord{{RelPath: "user.entity.ts", Declarations: []m.DeclarationRecord{
			{Kind: m.KindInterface, Name: "User"},
		}}},
		Conflicts: []m.ConflictRecord{{Name: "User"}},
	}

	t.Run("writes documentation", func(t *testing.T) {
		f := newWorkflowFixture(t)
		docs := filepath.Join(t.TempDir(), "docs", "extracted-types.md")
		args := domain.ExtractArgs{DocsPath: m.Path(docs)}

		f.extractor.On("Extract", mock.Anything, args).Return(extraction, nil).Once()
		f.ui.On("DisplayExtraction", mock.Anything, extraction, mock.Anything).Return(nil).Once()

		require.NoError(t, f.workflow.Extract(context.Background(), args, domain.OutputArgs{}))

		data, err := os.ReadFile(docs)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Extracted Types Documentation")
		assert.Contains(t, string(data), "- **User** (interface)")
	})

	t.Run("conflicts fail only on request", func(t *testing.T) {
		f := newWorkflowFixture(t)
		args := domain.ExtractArgs{FailOnConflict: true}

		f.extractor.On("Extract", mock.Anything, args).Return(extraction, nil).Once()
		f.ui.On("DisplayExtraction", mock.Anything, extraction, mock.Anything).Return(nil).Once()

		err := f.workflow.Extract(context.Background(), args, domain.OutputArgs{})
		assert.ErrorIs(t, err, domain.ErrConflictsFound)
	})

	t.Run("extractor failure", func(t *testing.T) {
		f := newWorkflowFixture(t)
		args := domain.ExtractArgs{}

		f.extractor.On("Extract", mock.Anything, args).Return(m.Extraction{}, domain.ErrSourceTreeNotFound).Once()

		err := f.workflow.Extract(context.Background(), args, domain.OutputArgs{})
		assert.ErrorIs(t, err, domain.ErrSourceTreeNotFound)
	})
}

func TestWorkflow_Release(t *testing.T) {
	f := newWorkflowFixture(t)
	release := m.Release{PreviousVersion: "1.0.0", Version: "1.0.1"}

	f.releaser.On("Release", mock.Anything, mock.MatchedBy(func(args domain.ReleaseArgs) bool {
		return args.Kind == domain.ReleasePatch && args.OnStep != nil && !args.Now.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(domain.ReleaseArgs).OnStep(domain.StepRunTests)
	}).Return(release, nil).Once()
	f.ui.On("DisplayReleaseStep", mock.Anything, domain.StepRunTests).Return().Once()
	f.ui.On("DisplayRelease", mock.Anything, release, mock.Anything).Return(nil).Once()

	err := f.workflow.Release(context.Background(), domain.ReleaseArgs{Kind: domain.ReleasePatch}, domain.OutputArgs{})
	require.NoError(t, err)
}
