package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/swatchfile/swatch/internal/util"
)

func registerBackup(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("backup")
	cmd.SetDescription("Manage palette backups")

	createCmd := ra.NewCmd("create")
	createCmd.SetDescription("Create a backup of the current palette")
	ctx.BackupCreateReason, _ = ra.NewString("reason").
		SetOptional(true).
		SetUsage("Tag to include in the backup filename").
		Register(createCmd)
	ctx.BackupCreateUsed, _ = cmd.RegisterCmd(createCmd)

	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List available backups")
	ctx.BackupListUsed, _ = cmd.RegisterCmd(listCmd)

	restoreCmd := ra.NewCmd("restore")
	restoreCmd.SetDescription("Replace the palette with a backup's contents")
	ctx.BackupRestorePath, _ = ra.NewString("path").
		SetUsage("Backup file to restore").
		Register(restoreCmd)
	ctx.BackupRestoreForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(restoreCmd)
	ctx.BackupRestoreUsed, _ = cmd.RegisterCmd(restoreCmd)

	ctx.BackupUsed, _ = parent.RegisterCmd(cmd)
}

func runBackupCreate(reason string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	path, err := app.Palette.CreateBackup(reason)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Backup written to %s", path)
}

func runBackupList() {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	backups, err := app.Palette.ListBackups()
	if err != nil {
		Fatal(err)
	}

	if len(backups) == 0 {
		PrintInfo("No backups found")
		return
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %s\n",
			util.FormatMillis(b.Metadata.TimestampMillis),
			StyleMuted.Render(fmt.Sprintf("%2d colors", b.Metadata.ColorCount)),
			b.Path,
		)
	}
}

func runBackupRestore(path string, force, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("restoring a backup requires --force in non-interactive mode"))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Replace the current palette with %s?", path),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	records, err := app.Palette.RestoreFromBackup(path)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Restored %d colors from %s", len(records), path)
}
