package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/fileaccess/errors"
)

func ExampleClassify() {
	err := &fs.PathError{Op: "open", Path: "missing.txt", Err: fs.ErrNotExist}
	fmt.Println(errors.Classify(err))
	// Output: NotFound
}

func ExampleWrap() {
	err := errors.Wrap(fs.ErrPermission, errors.KindPermissionDenied, "permission denied accessing protected.txt")
	fmt.Println(err.Error())
	// Output: [PermissionDenied] permission denied accessing protected.txt: permission denied
}

func ExampleMalformed() {
	err := errors.Malformed(fmt.Errorf("row 3: expected 2 fields"))
	fmt.Println(errors.GetKind(err))
	// Output: MalformedContent
}
