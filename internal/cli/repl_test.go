package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Recover(ctx context.Context) error     { return f.record("recover") }
func (f *fakeExec) AddNote(ctx context.Context) error     { return f.record("addnote") }
func (f *fakeExec) ListNotes(ctx context.Context) error   { return f.record("list") }
func (f *fakeExec) ShowNote(ctx context.Context) error      { return f.record("show") }
func (f *fakeExec) EditNote(ctx context.Context) error      { return f.record("edit") }
func (f *fakeExec) PinNote(ctx context.Context) error       { return f.record("pin") }
func (f *fakeExec) UnpinNote(ctx context.Context) error     { return f.record("unpin") }
func (f *fakeExec) ArchiveNote(ctx context.Context) error   { return f.record("archive") }
func (f *fakeExec) UnarchiveNote(ctx context.Context) error { return f.record("unarchive") }
func (f *fakeExec) LabelNote(ctx context.Context) error     { return f.record("label") }
func (f *fakeExec) TrashNote(ctx context.Context) error     { return f.record("trash") }
func (f *fakeExec) RestoreNote(ctx context.Context) error   { return f.record("restore") }
func (f *fakeExec) DeleteNote(ctx context.Context) error    { return f.record("delete") }
func (f *fakeExec) AddFolder(ctx context.Context) error     { return f.record("addfolder") }
func (f *fakeExec) ListFolders(ctx context.Context) error   { return f.record("folders") }
func (f *fakeExec) DeleteFolder(ctx context.Context) error  { return f.record("deletefolder") }
func (f *fakeExec) AddFile(ctx context.Context) error     { return f.record("addfile") }
func (f *fakeExec) ListFiles(ctx context.Context) error   { return f.record("files") }
func (f *fakeExec) SaveFile(ctx context.Context) error    { return f.record("getfile") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"addnote",
		"list",
		"show",
		"pin",
		"unpin",
		"archive",
		"unarchive",
		"label",
		"trash",
		"restore",
		"deletefolder",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "addnote", "list", "show", "pin", "unpin", "archive", "unarchive", "label", "trash", "restore", "deletefolder", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("bogus\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
