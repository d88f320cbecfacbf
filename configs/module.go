package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/pseudo/cmds"
	"github.com/reusee/pseudo/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

func init() {
	cmds.Define("-config-schema", cmds.Func(func() {
		os.Stdout.WriteString(schema)
		os.Exit(0)
	}).Desc("print the config schema"))
}

var filenames = []string{
	"pseudo.cue",
	".pseudo.cue",
}

func (Module) Loader(
	logger logs.Logger,
) Loader {

	// files named by -config come first
	paths := append([]string(nil), *configFiles...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return NewLoader(paths, schema)
}
