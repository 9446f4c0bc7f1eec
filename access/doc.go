// Package access runs scoped file accesses.
//
// An access opens one file below a base directory in read, write or append
// mode, hands the open Handle to a caller supplied body and releases the
// handle exactly once on every exit path. Failures are classified by the
// errors package, most specific kind first:
//
//	NotFound > PermissionDenied > MalformedContent > GenericOSFailure > UnknownFailure
//
// Requests that fail validation never open anything and are reported as
// InvalidRequest.
//
// Every call also produces status lines on a Reporter: the failure line
// "<Kind>: <cause>" when something failed, "File closed" after a successful
// release, and "Continuing the program..." last. ConsoleReporter delivers
// the lines of one call together so concurrent accesses never interleave.
//
// Basic usage:
//
//	a := access.New(billy.NewLocal(baseDir),
//		access.WithReporter(access.NewConsoleReporter(os.Stdout)))
//
//	data, err := access.Access(a, access.Read("data.txt"), func(h access.Handle) ([]byte, error) {
//		return io.ReadAll(h)
//	})
//	if errors.IsKind(err, errors.KindNotFound) {
//		// handle missing file
//	}
package access
