package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	AddNote(ctx context.Context) error
	ListNotes(ctx context.Context) error
	ShowNote(ctx context.Context) error
	EditNote(ctx context.Context) error
	PinNote(ctx context.Context) error
	UnpinNote(ctx context.Context) error
	ArchiveNote(ctx context.Context) error
	UnarchiveNote(ctx context.Context) error
	LabelNote(ctx context.Context) error
	TrashNote(ctx context.Context) error
	RestoreNote(ctx context.Context) error
	DeleteNote(ctx context.Context) error
	AddFolder(ctx context.Context) error
	ListFolders(ctx context.Context) error
	DeleteFolder(ctx context.Context) error
	AddFile(ctx context.Context) error
	ListFiles(ctx context.Context) error
	SaveFile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the VaultNotes CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Locked:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — unlock the vault
//	  - recover        — recover the vault passphrase with a recovery key
//	  - exit | quit    — leave the program
//
//	Unlocked:
//	  - help           — show available commands
//	  - addnote        — add a note
//	  - list           — list notes
//	  - show           — show a single note (interactive ID prompt)
//	  - edit           — edit a note
//	  - pin | unpin    — pin a note to the top of listings, or revert
//	  - archive        — hide a note from the default view
//	  - unarchive      — bring an archived note back
//	  - label          — replace a note's labels
//	  - trash          — move a note to the trash
//	  - restore        — restore a note from the trash
//	  - delete         — delete a note permanently
//	  - addfolder      — create a folder
//	  - folders        — list folders
//	  - deletefolder   — delete a folder (its notes move to the root)
//	  - addfile        — store a file
//	  - files          — list files
//	  - getfile        — save a stored file to disk
//	  - logout         — lock the vault
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vn> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: addnote, (l)ist, show, edit, pin, unpin, archive, unarchive, label, trash, restore, delete, addfolder, folders, deletefolder, addfile, files, getfile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, recover, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "recover":
			_ = a.Recover(ctx)

		case "addnote":
			_ = a.AddNote(ctx)

		case "l", "list":
			_ = a.ListNotes(ctx)

		case "show":
			_ = a.ShowNote(ctx)

		case "edit":
			_ = a.EditNote(ctx)

		case "pin":
			_ = a.PinNote(ctx)

		case "unpin":
			_ = a.UnpinNote(ctx)

		case "archive":
			_ = a.ArchiveNote(ctx)

		case "unarchive":
			_ = a.UnarchiveNote(ctx)

		case "label":
			_ = a.LabelNote(ctx)

		case "trash":
			_ = a.TrashNote(ctx)

		case "restore":
			_ = a.RestoreNote(ctx)

		case "delete":
			_ = a.DeleteNote(ctx)

		case "addfolder":
			_ = a.AddFolder(ctx)

		case "folders":
			_ = a.ListFolders(ctx)

		case "deletefolder":
			_ = a.DeleteFolder(ctx)

		case "addfile":
			_ = a.AddFile(ctx)

		case "files":
			_ = a.ListFiles(ctx)

		case "getfile":
			_ = a.SaveFile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
