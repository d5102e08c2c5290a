package domain_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"srcalias.dev/pkg/srcalias/internal/adapter"
	adaptermocks "srcalias.dev/pkg/srcalias/internal/adapter/mocks"
	"srcalias.dev/pkg/srcalias/internal/controller"
	controllermocks "srcalias.dev/pkg/srcalias/internal/controller/mocks"
	"srcalias.dev/pkg/srcalias/internal/domain"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

const deepImport = "import { X } from '../../Foo/Bar';"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func newSimpleWorkflow(fsAdapter adapter.SourceFSAdapter) (domain.Workflow, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return domain.NewWorkflow(fsAdapter, adapter.NewReportStore(), controller.NewSimpleUI(cmd)), out
}

func TestWorkflow_Rewrite_ExampleTree(t *testing.T) {
	root := t.TempDir()
	matching := filepath.Join(root, "src", "a", "b", "c.ts")
	shallow := filepath.Join(root, "src", "a", "d.tsx")
	sibling := filepath.Join(root, "src", "a", "b", "e.ts")
	vendored := filepath.Join(root, "node_modules", "lib", "src", "a", "b", "c.ts")
	nestedVendored := filepath.Join(root, "src", "node_modules", "a", "b.ts")
	other := filepath.Join(root, "src", "a", "b", "c.js")

	writeFile(t, matching, deepImport+"\nexport const x = 1;\n")
	writeFile(t, shallow, deepImport+"\n")
	writeFile(t, sibling, "import Default from './sibling';\n")
	writeFile(t, vendored, deepImport+"\n")
	writeFile(t, nestedVendored, "import Y from '../Y';\n")
	writeFile(t, other, deepImport+"\n")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayRoot(mock.Anything, m.Path(root)).Return().Once()
	ui.EXPECT().DisplayRewrite(mock.Anything, m.Path(matching), 1, deepImport, "import { X } from '@/Foo/Bar';").Return().Once()
	ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(report m.RunReport) bool {
		return report.FilesScanned == 3 && report.FilesChanged == 1 && report.ImportsRewritten == 1
	})).Return().Once()

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewReportStore(), ui)

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)

	assert.Equal(t, m.Path(root), report.Root)
	assert.Equal(t, "import { X } from '@/Foo/Bar';\nexport const x = 1;", readFile(t, matching))
	assert.Equal(t, deepImport+"\n", readFile(t, shallow))
	assert.Equal(t, "import Default from './sibling';\n", readFile(t, sibling))
	assert.Equal(t, deepImport+"\n", readFile(t, vendored))
	assert.Equal(t, "import Y from '../Y';\n", readFile(t, nestedVendored))
	assert.Equal(t, deepImport+"\n", readFile(t, other))
}

func TestWorkflow_Rewrite_Idempotent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "feature", "ui", "Button.tsx")
	writeFile(t, path, "import React from 'react';\n"+deepImport+"\nimport { Y } from '../Y';\n")

	wf, out := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	first, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ImportsRewritten)

	afterFirst := readFile(t, path)
	assert.Equal(t, "import React from 'react';\nimport { X } from '@/Foo/Bar';\nimport { Y } from '../Y';", afterFirst)
	assert.Contains(t, out.String(), deepImport+" --> import { X } from '@/Foo/Bar';")

	second, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)
	assert.Equal(t, 0, second.ImportsRewritten)
	assert.Equal(t, 0, second.FilesChanged)
	assert.Equal(t, afterFirst, readFile(t, path))
}

func TestWorkflow_Rewrite_CRLFLines(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "a", "index.ts")
	writeFile(t, path, "import A from '../A';\r\nconst a = 1;\r\n")

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)
	assert.Equal(t, "import A from '@/A';\nconst a = 1;", readFile(t, path))
}

func TestWorkflow_Rewrite_MalformedLineIsSkipped(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "a", "b", "c.ts")
	content := "import { X } from \"../../X\";\n" + deepImport + "\n"
	writeFile(t, path, content)

	wf, out := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)

	assert.Equal(t, 1, report.MalformedLines)
	assert.Equal(t, 1, report.ImportsRewritten)
	assert.Equal(t, "import { X } from \"../../X\";\nimport { X } from '@/Foo/Bar';", readFile(t, path))
	assert.Contains(t, out.String(), "warning: "+path+":1:")
	require.Len(t, report.Files, 1)
	assert.Len(t, report.Files[0].Warnings, 1)
}

func TestWorkflow_Rewrite_OnlyMalformedDoesNotWrite(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "a", "c.ts")
	content := "import { X } from \"../X\";\n"
	writeFile(t, path, content)

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)
	assert.Equal(t, 0, report.FilesChanged)
	assert.Equal(t, content, readFile(t, path))
}

func TestWorkflow_Rewrite_NotText(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "binary.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 'i'}, 0o644))

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotText)
	assert.Contains(t, err.Error(), path)
}

func TestWorkflow_Rewrite_RootNotFound(t *testing.T) {
	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(filepath.Join(t.TempDir(), "missing"))})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}

func TestWorkflow_Rewrite_RootNamedNodeModules(t *testing.T) {
	root := filepath.Join(t.TempDir(), "node_modules")
	path := filepath.Join(root, "src", "a", "b", "c.ts")
	writeFile(t, path, deepImport+"\n")

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.NoError(t, err)
	assert.Equal(t, 0, report.FilesScanned)
	assert.Equal(t, deepImport+"\n", readFile(t, path))
}

func TestWorkflow_Rewrite_ExcludeGlob(t *testing.T) {
	root := t.TempDir()
	legacy := filepath.Join(root, "src", "legacy", "a", "x.ts")
	current := filepath.Join(root, "src", "current", "a", "x.ts")
	writeFile(t, legacy, deepImport+"\n")
	writeFile(t, current, deepImport+"\n")

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{
		Root:    m.Path(root),
		Exclude: []string{"src/legacy/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.FilesScanned)
	assert.Equal(t, deepImport+"\n", readFile(t, legacy))
	assert.Equal(t, "import { X } from '@/Foo/Bar';", readFile(t, current))
}

func TestWorkflow_Rewrite_InvalidExclude(t *testing.T) {
	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(t.TempDir()), Exclude: []string{"[oops"}})
	require.Error(t, err)
}

func TestWorkflow_Rewrite_CustomAliasAndSourceRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app", "pages", "home", "index.ts")
	writeFile(t, path, deepImport+"\n")

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{
		Root:       m.Path(root),
		Alias:      "~/",
		SourceRoot: "app",
	})
	require.NoError(t, err)
	assert.Equal(t, "import { X } from '~/Foo/Bar';", readFile(t, path))
}

func TestWorkflow_Rewrite_SavesReport(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "a", "b", "c.ts")
	writeFile(t, path, deepImport+"\n")
	reportPath := m.Path(filepath.Join(t.TempDir(), "report.yaml"))

	wf, _ := newSimpleWorkflow(adapter.NewLocalSourceFSAdapter())

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root), Report: reportPath})
	require.NoError(t, err)

	saved, err := adapter.NewReportStore().LoadReport(context.Background(), reportPath)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ImportsRewritten)
	require.Len(t, saved.Files, 1)
	assert.Equal(t, m.Path(path), saved.Files[0].Path)
	assert.Equal(t, 2, saved.Files[0].Depth)
}

func TestWorkflow_Rewrite_ReportSaveError(t *testing.T) {
	root := t.TempDir()
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().SaveReport(mock.Anything, m.Path("/reports/run.yaml"), mock.Anything).Return(errors.New("disk full"))

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), store, controller.NewSimpleUI(cmd))

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root), Report: "/reports/run.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

type failingWriteAdapter struct {
	*adapter.LocalSourceFSAdapter
}

func (failingWriteAdapter) WriteFile(context.Context, m.Path, []byte) error {
	return fs.ErrPermission
}

func TestWorkflow_Rewrite_WriteErrorIsFatal(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "src", "a", "b", "a.ts")
	second := filepath.Join(root, "src", "a", "b", "b.ts")
	writeFile(t, first, deepImport+"\n")
	writeFile(t, second, deepImport+"\n")

	wf, _ := newSimpleWorkflow(failingWriteAdapter{adapter.NewLocalSourceFSAdapter()})

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), first)
	assert.Equal(t, 0, report.FilesScanned)
}

func TestWorkflow_Rewrite_ReadErrorIsFatal(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "src", "a.ts")
	writeFile(t, path, deepImport+"\n")

	local := adapter.NewLocalSourceFSAdapter()
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().AbsPath(mock.Anything, m.Path(root)).RunAndReturn(local.AbsPath)
	fsAdapter.EXPECT().FileInfo(mock.Anything, m.Path(root)).RunAndReturn(local.FileInfo)
	fsAdapter.EXPECT().RelPath(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(local.RelPath)
	fsAdapter.EXPECT().Walk(mock.Anything, m.Path(root), mock.Anything).RunAndReturn(local.Walk)
	fsAdapter.EXPECT().ReadFile(mock.Anything, m.Path(path)).Return(nil, errors.New("i/o error"))

	wf, _ := newSimpleWorkflow(fsAdapter)

	_, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: m.Path(root)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "i/o error")
}

func TestWorkflow_Rewrite_WalkEntryErrorsAreSkipped(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().AbsPath(mock.Anything, m.Path("/project")).Return(m.Path("/project"), nil)
	fsAdapter.EXPECT().FileInfo(mock.Anything, m.Path("/project")).Return(nil, nil)
	fsAdapter.EXPECT().Walk(mock.Anything, m.Path("/project"), mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Path, fn fs.WalkDirFunc) error {
			return fn("/project/locked", nil, fs.ErrPermission)
		})

	wf, _ := newSimpleWorkflow(fsAdapter)

	report, err := wf.Rewrite(context.Background(), domain.RewriteArgs{Root: "/project"})
	require.NoError(t, err)
	assert.Equal(t, 0, report.FilesScanned)
}

func TestWorkflow_Rewrite_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.ts"), "export {};\n")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayRoot(mock.Anything, mock.Anything).Return()

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewReportStore(), ui)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wf.Rewrite(ctx, domain.RewriteArgs{Root: m.Path(root)})
	assert.ErrorIs(t, err, context.Canceled)
}
