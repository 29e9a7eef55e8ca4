package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool

	// list command
	ListUsed *bool
	ListJson *bool

	// show command
	ShowUsed  *bool
	ShowIndex *int
	ShowJson  *bool

	// add command
	AddUsed *bool
	AddName *string
	AddHex  *string
	AddR    *string
	AddG    *string
	AddB    *string

	// edit command
	EditUsed  *bool
	EditIndex *int
	EditName  *string
	EditHex   *string
	EditR     *string
	EditG     *string
	EditB     *string

	// delete command
	DeleteUsed  *bool
	DeleteIndex *int
	DeleteForce *bool

	// move command
	MoveUsed *bool
	MoveFrom *int
	MoveTo   *int

	// copy command
	CopyUsed   *bool
	CopyIndex  *int
	CopyFormat *string

	// undo / redo
	UndoUsed *bool
	RedoUsed *bool

	// backup command
	BackupUsed         *bool
	BackupCreateUsed   *bool
	BackupCreateReason *string
	BackupListUsed     *bool
	BackupRestoreUsed  *bool
	BackupRestorePath  *string
	BackupRestoreForce *bool

	// serve command
	ServeUsed *bool
	ServePort *int
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("swatch")
	cmd.SetDescription("Local color swatch manager")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerList(cmd, ctx)
	registerShow(cmd, ctx)
	registerAdd(cmd, ctx)
	registerEdit(cmd, ctx)
	registerDelete(cmd, ctx)
	registerMove(cmd, ctx)
	registerCopy(cmd, ctx)
	registerUndo(cmd, ctx)
	registerBackup(cmd, ctx)
	registerServe(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	switch {
	case *ctx.ListUsed:
		runList(*ctx.ListJson)

	case *ctx.ShowUsed:
		runShow(*ctx.ShowIndex, *ctx.ShowJson)

	case *ctx.AddUsed:
		runAdd(*ctx.AddName, *ctx.AddHex, *ctx.AddR, *ctx.AddG, *ctx.AddB, *ctx.NonInteractive)

	case *ctx.EditUsed:
		runEdit(*ctx.EditIndex, *ctx.EditName, *ctx.EditHex, *ctx.EditR, *ctx.EditG, *ctx.EditB, *ctx.NonInteractive)

	case *ctx.DeleteUsed:
		runDelete(*ctx.DeleteIndex, *ctx.DeleteForce, *ctx.NonInteractive)

	case *ctx.MoveUsed:
		runMove(*ctx.MoveFrom, *ctx.MoveTo)

	case *ctx.CopyUsed:
		runCopy(*ctx.CopyIndex, *ctx.CopyFormat)

	case *ctx.UndoUsed:
		runUndo()

	case *ctx.RedoUsed:
		runRedo()

	case *ctx.BackupCreateUsed:
		runBackupCreate(*ctx.BackupCreateReason)

	case *ctx.BackupListUsed:
		runBackupList()

	case *ctx.BackupRestoreUsed:
		runBackupRestore(*ctx.BackupRestorePath, *ctx.BackupRestoreForce, *ctx.NonInteractive)

	case *ctx.ServeUsed:
		runServe(*ctx.ServePort)
	}
}
