package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/pseudo/cmds"
	"github.com/reusee/pseudo/dumps"
	"github.com/reusee/pseudo/vars"
)

type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		First[string](loader, "prompt"),
		"> ",
	))
}

type HistoryFile string

func (Module) HistoryFile(
	loader Loader,
) HistoryFile {
	var defaultPath string
	if dir, err := os.UserCacheDir(); err == nil {
		defaultPath = filepath.Join(dir, "pseudo_history")
	}
	var path string
	if err := loader.AssignFirst("history_file", &path); err == nil {
		// an explicit empty string disables history
		return HistoryFile(path)
	}
	return HistoryFile(defaultPath)
}

var formatFlag dumps.Format

func init() {
	cmds.Define("-format", cmds.Func(func(str string) error {
		format, err := dumps.ParseFormat(str)
		if err != nil {
			return err
		}
		formatFlag = format
		return nil
	}).Desc("dump format: tree, json or yaml"))
	cmds.Define("-json", cmds.Func(func() {
		formatFlag = dumps.FormatJSON
	}).Desc("same as -format json"))
	cmds.Define("-yaml", cmds.Func(func() {
		formatFlag = dumps.FormatYAML
	}).Desc("same as -format yaml"))
}

// Format is the dump format, from -format, then config, then the tree
// format. Config values are checked by the schema.
func (Module) Format(
	loader Loader,
) dumps.Format {
	return vars.FirstNonZero(
		formatFlag,
		dumps.Format(First[string](loader, "format")),
		dumps.FormatTree,
	)
}
