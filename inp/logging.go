package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
)

var logFile *os.File

// InitLogFile opens a per-rank log file named "<fnamekey>_p<rank>.log"
// in dirout and connects the standard logger to it.
func InitLogFile(dirout, fnamekey string, rank int) (err error) {
	f, err := os.Create(io.Sf("%s/%s_p%d.log", dirout, fnamekey, rank))
	if err != nil {
		return err
	}
	logFile = f
	log.SetOutput(logFile)
	return nil
}

// FlushLog closes the log file opened by InitLogFile.
func FlushLog() {
	if logFile != nil {
		logFile.Close()
	}
}
