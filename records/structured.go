package records

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/fileaccess/access"
	ferrors "github.com/jmgilman/fileaccess/errors"
)

// ReadJSON decodes the file into a value of type T. Trailing data after the
// first JSON value is rejected.
func ReadJSON[T any](a *access.Accessor, path string) (T, error) {
	return access.Access(a, access.Read(path), func(h access.Handle) (T, error) {
		var v T
		dec := json.NewDecoder(h)
		if err := dec.Decode(&v); err != nil {
			return v, decodeErr(err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return v, ferrors.Malformed(errTrailingData)
		}
		return v, nil
	})
}

// WriteJSON replaces the file with v encoded as indented JSON.
func WriteJSON(a *access.Accessor, path string, v interface{}) error {
	return access.Do(a, access.Write(path), func(h access.Handle) error {
		enc := json.NewEncoder(h)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

// ReadYAML decodes the file into a value of type T.
func ReadYAML[T any](a *access.Accessor, path string) (T, error) {
	return access.Access(a, access.Read(path), func(h access.Handle) (T, error) {
		var v T
		if err := yaml.NewDecoder(h).Decode(&v); err != nil && err != io.EOF {
			return v, decodeErr(err)
		}
		return v, nil
	})
}

// WriteYAML replaces the file with v encoded as YAML.
func WriteYAML(a *access.Accessor, path string, v interface{}) error {
	return access.Do(a, access.Write(path), func(h access.Handle) error {
		enc := yaml.NewEncoder(h)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	})
}

// decodeErr marks decoder failures as malformed content unless they came
// from the file itself.
func decodeErr(err error) error {
	switch ferrors.Classify(err) {
	case ferrors.KindNotFound, ferrors.KindPermissionDenied, ferrors.KindGenericOSFailure:
		return err
	}
	return ferrors.Malformed(err)
}
