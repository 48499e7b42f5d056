package cli

import (
	"context"
	"fmt"
	"os"
)

// AddFolder prompts for a name and creates a folder.
func (a *App) AddFolder(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		return err
	}

	folder, err := a.folders.Add(ctx, a.session, name)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	fmt.Println("Created folder", folder.ID)
	return nil
}

// ListFolders prints the user's folders.
func (a *App) ListFolders(ctx context.Context) error {
	folders, err := a.folders.List(ctx, a.session)
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	if len(folders) == 0 {
		fmt.Println("No folders yet.")
		return nil
	}

	for _, f := range folders {
		name := f.Name
		if f.DecryptFailed {
			name = "<decryption error>"
		}
		fmt.Printf("%s  %s\n", f.ID, name)
	}
	return nil
}

// DeleteFolder prompts for a folder id and removes the folder. Notes and
// files inside it are kept and fall back to the vault root.
func (a *App) DeleteFolder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter folder id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.folders.Delete(ctx, a.session, id); err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}

	fmt.Println("Folder deleted.")
	return nil
}
