package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pratikshau1/vaultnotes/internal/session"
)

// getMultiline is an indirection used to facilitate testing.
var getMultiline = GetMultiline

// AddNote prompts for a title, body, and optional folder id and stores a new
// encrypted note.
func (a *App) AddNote(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := getMultiline(a.reader, "Enter note text", os.Stdout)
	if err != nil {
		return err
	}

	folderID, err := getSimpleText(a.reader, "Enter folder id (empty for root)", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.notes.Add(ctx, a.session, folderID, title, content)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	fmt.Println("Saved note", note.ID)
	return nil
}

// ListNotes prints the user's notes, including trashed ones marked as such.
// Notes that fail to decrypt show an error placeholder; the rest of the
// vault still loads.
func (a *App) ListNotes(ctx context.Context) error {
	notes, err := a.notes.List(ctx, a.session, true)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	if len(notes) == 0 {
		fmt.Println("No notes yet.")
		return nil
	}

	for _, n := range notes {
		title := n.Title
		if n.DecryptFailed {
			title = "<decryption error>"
		}
		marker := " "
		switch {
		case n.Trashed:
			marker = "T"
		case n.Archived:
			marker = "A"
		case n.Pinned:
			marker = "*"
		}
		line := fmt.Sprintf("%s %s  %s", marker, n.ID, title)
		if len(n.Labels) > 0 {
			line += "  [" + strings.Join(n.Labels, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}

// ShowNote prompts for a note id and prints the decrypted note.
func (a *App) ShowNote(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.notes.Get(ctx, a.session, id)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	if note.DecryptFailed {
		fmt.Println("This note cannot be decrypted with the current vault passphrase.")
		return nil
	}

	fmt.Println("#", note.Title)
	fmt.Println(note.Content)
	return nil
}

// EditNote prompts for a note id and replacement title/body.
func (a *App) EditNote(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter new note text", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.notes.Update(ctx, a.session, id, title, content); err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	fmt.Println("Updated.")
	return nil
}

func (a *App) PinNote(ctx context.Context) error {
	return a.noteByID(ctx, "pinned", a.notes.Pin)
}

func (a *App) UnpinNote(ctx context.Context) error {
	return a.noteByID(ctx, "unpinned", a.notes.Unpin)
}

func (a *App) ArchiveNote(ctx context.Context) error {
	return a.noteByID(ctx, "archived", a.notes.Archive)
}

func (a *App) UnarchiveNote(ctx context.Context) error {
	return a.noteByID(ctx, "unarchived", a.notes.Unarchive)
}

// LabelNote prompts for a note id and a comma-separated label list and
// replaces the note's labels. An empty list clears them.
func (a *App) LabelNote(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}
	raw, err := getSimpleText(a.reader, "Enter labels, comma-separated (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}

	var labels []string
	for _, l := range strings.Split(raw, ",") {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}

	if err := a.notes.SetLabels(ctx, a.session, id, labels); err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	fmt.Println("Labels updated.")
	return nil
}

func (a *App) TrashNote(ctx context.Context) error {
	return a.noteByID(ctx, "moved to trash", a.notes.Trash)
}

func (a *App) RestoreNote(ctx context.Context) error {
	return a.noteByID(ctx, "restored", a.notes.Restore)
}

func (a *App) DeleteNote(ctx context.Context) error {
	return a.noteByID(ctx, "deleted permanently", a.notes.Delete)
}

func (a *App) noteByID(ctx context.Context, done string, op func(context.Context, *session.Session, string) error) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}
	if err := op(ctx, a.session, id); err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	fmt.Println("Note", done+".")
	return nil
}
