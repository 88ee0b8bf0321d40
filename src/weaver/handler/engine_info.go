package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/siteweaver/weaver/src/weaver/internal/engineinfofile"
)

const _engineNameValue = "weaver-daemon"

// Output identity info for the running engine process.
// Other connection methods (e.g. JSON-RPC) independently add their fields to the engine info file.
func outputEngineInfo(infofile engineinfofile.EngineInfoFile) error {
	if err := infofile.UpdateField("engine", _engineNameValue); err != nil {
		return fmt.Errorf("outputting engine name to info file: %w", err)
	}
	if err := infofile.UpdateField("pid", strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting pid to info file: %w", err)
	}
	return nil
}
