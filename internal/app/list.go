package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"go.trai.ch/mesonic/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// ListOptions configures the Tasks and Tests listings.
type ListOptions struct {
	JSON bool
}

type taskView struct {
	Folder string `json:"folder"`
	domain.TaskDescriptor
}

// Tasks prints the tasks of every configured folder.
func (a *App) Tasks(ctx context.Context, opts ListOptions) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	reg, err := a.collect(ctx, ws)
	if err != nil {
		return err
	}

	all := reg.All()
	if opts.JSON {
		views := make([]taskView, 0, len(all))
		for _, t := range all {
			views = append(views, taskView{Folder: t.Folder.Path, TaskDescriptor: t})
		}
		return encodeJSON(a.stdout, views)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	var current string
	for _, t := range all {
		if len(ws.Folders) > 1 && t.Folder.Path != current {
			current = t.Folder.Path
			_, _ = fmt.Fprintf(tw, "%s\t\n", t.Folder.Name)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", t.Definition.Key(), t.Name)
	}
	return tw.Flush()
}

type testView struct {
	ID       string             `json:"id"`
	Label    string             `json:"label"`
	Folder   string             `json:"folder,omitempty"`
	Result   *domain.TestResult `json:"result,omitempty"`
	Children []testView         `json:"children,omitempty"`
}

// Tests reconciles the test tree and prints it together with the last known results.
func (a *App) Tests(ctx context.Context, opts ListOptions) error {
	ws, root, err := a.loadTests(ctx)
	if err != nil {
		return err
	}

	views := a.viewTree(root)
	if opts.JSON {
		return encodeJSON(a.stdout, views)
	}

	if len(views) == 0 {
		a.notifier.Info(fmt.Sprintf("No tests found in %d folder(s)", len(ws.Folders)))
		return nil
	}
	printTree(a.stdout, views, "")
	return nil
}

func (a *App) loadTests(ctx context.Context) (*domain.Workspace, ports.TestCollection, error) {
	ws, err := a.loadWorkspace()
	if err != nil {
		return nil, nil, err
	}

	root := a.newCollection()
	if _, err := a.reconciler.Reconcile(ctx, ws, root); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load tests")
	}
	return ws, root, nil
}

func (a *App) viewTree(items ports.TestCollection) []testView {
	if items == nil {
		return nil
	}
	var views []testView
	for item := range items.All() {
		v := testView{ID: item.ID, Label: item.Label, Folder: item.Folder.Path}
		if item.IsLeaf() {
			v.Result = a.lastResult(item)
		} else {
			v.Children = a.viewTree(item.Children)
		}
		views = append(views, v)
	}
	return views
}

func (a *App) lastResult(item *ports.TestItem) *domain.TestResult {
	if a.store == nil || item.BuildDir == "" {
		return nil
	}
	res, err := a.store.Get(item.BuildDir, item.ID)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring stored result of %s: %v", item.ID, err))
		return nil
	}
	return res
}

func printTree(w io.Writer, views []testView, indent string) {
	for _, v := range views {
		if v.Children != nil {
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, v.Label)
			printTree(w, v.Children, indent+"  ")
			continue
		}

		outcome := domain.OutcomeSkipped
		if v.Result != nil {
			outcome = v.Result.Outcome
		}
		icon, _ := report.Icon(outcome)
		line := fmt.Sprintf("%s%s %s", indent, icon, v.Label)
		if v.Result != nil {
			line += fmt.Sprintf(" (%s, %v)", v.Result.Outcome, v.Result.Duration)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode output")
	}
	return nil
}
