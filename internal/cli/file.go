package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/pratikshau1/vaultnotes/internal/filex"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// AddFile reads a local file and stores it encrypted in the vault.
func (a *App) AddFile(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := readFile(path)
	if err != nil {
		fmt.Println("Error reading file:", err.Error())
		return err
	}

	folderID, err := getSimpleText(a.reader, "Enter folder id (empty for root)", os.Stdout)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	file, err := a.files.Add(ctx, a.session, folderID, name, mimeType, data)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	fmt.Printf("Stored %s (%d bytes) as %s\n", name, file.Size, file.ID)
	return nil
}

// ListFiles prints the user's file entries without downloading payloads.
func (a *App) ListFiles(ctx context.Context) error {
	files, err := a.files.List(ctx, a.session, true)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	if len(files) == 0 {
		fmt.Println("No files yet.")
		return nil
	}

	for _, f := range files {
		name := f.Name
		if f.DecryptFailed {
			name = "<decryption error>"
		}
		marker := " "
		if f.Trashed {
			marker = "T"
		}
		fmt.Printf("%s %s  %s (%d bytes)\n", marker, f.ID, name, f.Size)
	}
	return nil
}

// SaveFile downloads a stored file, decrypts it, and writes it to disk.
func (a *App) SaveFile(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}

	file, err := a.files.Get(ctx, a.session, id)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	if file.DecryptFailed {
		fmt.Println("This file cannot be decrypted with the current vault passphrase.")
		return nil
	}

	path, err := getSimpleText(a.reader, fmt.Sprintf("Save as (empty for %q)", file.Name), os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		path = file.Name
	}

	if err := filex.WriteFileAtomic(path, file.Data, 0o600); err != nil {
		fmt.Println("Error writing file:", err.Error())
		return err
	}

	fmt.Println("Saved to", path)
	return nil
}
