package cli

import (
	"github.com/amterp/ra"
)

func registerUndo(parent *ra.Cmd, ctx *CommandContext) {
	undoCmd := ra.NewCmd("undo")
	undoCmd.SetDescription("Undo the last change in this session")
	ctx.UndoUsed, _ = parent.RegisterCmd(undoCmd)

	redoCmd := ra.NewCmd("redo")
	redoCmd.SetDescription("Redo the last undone change in this session")
	ctx.RedoUsed, _ = parent.RegisterCmd(redoCmd)
}

func runUndo() {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	records, undone, err := app.Palette.Undo()
	if err != nil {
		Fatal(err)
	}
	if !undone {
		// History lives in memory, so a fresh process has nothing to
		// undo. The serve mode keeps it across mutations.
		PrintInfo("Nothing to undo")
		return
	}

	PrintSuccess("Undone (%d colors)", len(records))
}

func runRedo() {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	records, redone, err := app.Palette.Redo()
	if err != nil {
		Fatal(err)
	}
	if !redone {
		PrintInfo("Nothing to redo")
		return
	}

	PrintSuccess("Redone (%d colors)", len(records))
}
