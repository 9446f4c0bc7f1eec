// Package errors provides structured error handling for scoped file access.
//
// Every failure surfaced by the access routine is a FileError carrying a Kind.
// Kinds are ordered from most to least specific:
//
//	NotFound > PermissionDenied > MalformedContent > GenericOSFailure > UnknownFailure
//
// Classify evaluates a classifier chain in that order and returns the first
// match, so a broad matcher never shadows a narrow one: an *fs.PathError
// wrapping ENOENT is NotFound, not GenericOSFailure. InvalidRequest sits
// outside the chain and is only produced by request validation.
//
// # Quick Start
//
// Creating and wrapping errors:
//
//	err := errors.New(errors.KindInvalidRequest, "mode must be read, write or append")
//
//	f, err := fsys.Open(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.Classify(err), "open failed")
//	}
//
// Marking parse failures:
//
//	if err := json.Unmarshal(data, &v); err != nil {
//	    return errors.Malformed(err)
//	}
//
// Inspecting errors:
//
//	switch errors.GetKind(err) {
//	case errors.KindNotFound:
//	    // create it
//	case errors.KindPermissionDenied:
//	    // ask for different credentials
//	}
//
// Attaching context and serializing:
//
//	err = errors.WithContext(err, "path", name)
//	json.NewEncoder(w).Encode(errors.ToJSON(err))
//
// All FileError values work with the standard library errors.Is, errors.As
// and errors.Unwrap.
package errors
