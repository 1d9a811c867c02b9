/******************************************************************************
 *
 *  Description :
 *    Package exposes info, warning and error loggers for the bus core.
 *    The core logs sparingly: a subscriber panic recovered while
 *    republishing subscriber_exception, and a service slot race lost
 *    by a concurrent emplace. Everything else is the caller's concern.
 *
 *****************************************************************************/
package logs

import (
	"io"
	"log"
	"os"
)

var (
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

func init() {
	Init(os.Stdout)
}

// Init (re)creates the package loggers writing to w.
func Init(w io.Writer) {
	Info = log.New(w, "I ", log.LstdFlags|log.Lshortfile)
	Warning = log.New(w, "W ", log.LstdFlags|log.Lshortfile)
	Error = log.New(w, "E ", log.LstdFlags|log.Lshortfile)
}
