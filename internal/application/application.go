package application

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/iwat/vibedump/internal/domain"
)

const (
	contentOpen  = "--- File contents ---"
	contentClose = "---------------------"
)

type App struct {
	out        io.Writer
	errOut     io.Writer
	fileReader FileReader
	fileStater FileStater
}

func NewApp(out, errOut io.Writer, fileReader FileReader, fileStater FileStater) *App {
	return &App{
		out:        out,
		errOut:     errOut,
		fileReader: fileReader,
		fileStater: fileStater,
	}
}

// DumpFile reads the file at path, prints its contents framed by separator
// lines, then prints a metadata snapshot (size, modification time) taken by
// a second filesystem call. A read failure aborts with a *domain.ReadError;
// a metadata failure is reported on the error stream but the dump still
// completes successfully.
func (app *App) DumpFile(path string) error {
	fmt.Fprintf(app.out, "Reading file '%s'...\n", path)

	data, err := app.fileReader.ReadFile(path)
	if err != nil {
		return &domain.ReadError{Path: path, Err: err}
	}
	slog.Debug("file read", "path", path, "bytes", len(data))

	fmt.Fprintln(app.out)
	fmt.Fprintln(app.out, contentOpen)
	app.out.Write(data)
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		// keep the closing separator on its own line
		fmt.Fprintln(app.out)
	}
	fmt.Fprintln(app.out, contentClose)
	fmt.Fprintln(app.out)

	app.dumpMetadata(path)

	fmt.Fprintln(app.out, "Successfully read the file.")
	return nil
}

func (app *App) dumpMetadata(path string) {
	info, err := app.fileStater.Stat(path)
	if err != nil {
		fmt.Fprintln(app.errOut, &domain.MetadataError{Path: path, Err: err})
		return
	}

	meta := domain.MetadataFromFileInfo(info)
	slog.Debug("metadata snapshot", "path", path, "size", meta.Size)
	fmt.Fprintf(app.out, "File size: %d bytes\n", meta.Size)
	fmt.Fprintf(app.out, "Modified: %s\n", meta.ModTimeString())
}
