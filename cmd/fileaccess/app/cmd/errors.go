package cmd

import (
	"encoding/json"
	"io"

	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/internal/output"
)

func reportError(w io.Writer, err error, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(ferrors.ToJSON(err)); encErr == nil {
			return
		}
	}

	var fe ferrors.FileError
	if ferrors.As(err, &fe) {
		output.New(w).Error(fe.Kind().String() + ": " + fe.Message())
		return
	}
	output.New(w).Error(err.Error())
}
