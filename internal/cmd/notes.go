package cmd

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/theme"
)

// NotesCmd manages notes
type NotesCmd struct {
	Add   NotesAddCmd   `cmd:"add" help:"Add a new note"`
	Clear NotesClearCmd `cmd:"clear" help:"Delete all notes"`
	Del   NotesDelCmd   `cmd:"del" help:"Delete a note"`
	List  NotesListCmd  `cmd:"list" help:"List all notes, newest first" default:"1"`
	Set   NotesSetCmd   `cmd:"set" help:"Replace an existing note"`
}

// NotesListCmd lists all notes
type NotesListCmd struct {
	Full bool `help:"Show note contents, not just titles"`
}

// Run executes the list command
func (n *NotesListCmd) Run(container *Container) error {
	logging.Logger.Info("Executing notes list command")

	notes := container.NoteService.List(context.Background())
	if len(notes) == 0 {
		fmt.Println(theme.MutedStyle.Render("No notes."))
		return nil
	}
	for _, note := range notes {
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %s  %s\n", note.ID, note.Date, title)
		if n.Full && note.Content != "" {
			fmt.Println(theme.MutedStyle.Render("  " + note.Content))
		}
	}
	return nil
}

// NotesAddCmd adds a new note
type NotesAddCmd struct {
	Content string `arg:"" help:"Note content"`
	Session string `help:"ID of the session this note belongs to"`
	Title   string `help:"Note title"`
}

// Run executes the add command
func (n *NotesAddCmd) Run(container *Container) error {
	logging.Logger.Info("Executing notes add command")

	note, err := container.NoteService.Save(context.Background(), domain.Note{
		Content: n.Content,
		Session: n.Session,
		Title:   n.Title,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added note %s (%s)\n", note.ID, note.Date)
	return nil
}

// NotesSetCmd replaces an existing note
type NotesSetCmd struct {
	ID      string `arg:"" help:"ID of the note to replace"`
	Content string `arg:"" help:"New note content"`
	Title   string `help:"New note title"`
}

// Run executes the set command
func (n *NotesSetCmd) Run(container *Container) error {
	logging.Logger.Info("Executing notes set command", "id", n.ID)

	note, err := container.NoteService.Save(context.Background(), domain.Note{
		Content: n.Content,
		ID:      n.ID,
		Title:   n.Title,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved note %s.\n", note.ID)
	return nil
}

// NotesDelCmd deletes a note
type NotesDelCmd struct {
	ID string `arg:"" help:"ID of the note to delete"`
}

// Run executes the del command
func (n *NotesDelCmd) Run(container *Container) error {
	logging.Logger.Info("Executing notes del command", "id", n.ID)

	if err := container.NoteService.Delete(context.Background(), n.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted note %s.\n", n.ID)
	return nil
}

// NotesClearCmd deletes all notes
type NotesClearCmd struct {
	Force bool `help:"Skip confirmation" short:"f"`
}

// Run executes the clear command
func (n *NotesClearCmd) Run(container *Container) error {
	if !n.Force {
		fmt.Print("This will delete all notes. Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			return nil
		}
	}

	logging.Logger.Info("Executing notes clear command")
	if err := container.NoteService.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("Notes cleared.")
	return nil
}
