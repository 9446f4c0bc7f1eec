package cmd

import (
	"encoding/csv"
	"strings"

	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/records"
)

// splitRows parses command line row values with the dialect's delimiter.
func splitRows(values []string, d records.Dialect) ([][]string, error) {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		r := csv.NewReader(strings.NewReader(v))
		r.Comma = d.Comma
		r.FieldsPerRecord = -1
		row, err := r.Read()
		if err != nil {
			return nil, ferrors.Wrapf(err, ferrors.KindInvalidRequest, "invalid --row value %q", v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type address struct {
	Street string `json:"street" yaml:"street"`
	City   string `json:"city" yaml:"city"`
}

type person struct {
	Name    string  `json:"name" yaml:"name"`
	Age     int     `json:"age" yaml:"age"`
	Address address `json:"address" yaml:"address"`
}

// samplePeople is written by the json and yaml commands with --sample.
var samplePeople = []person{
	{Name: "Alice", Age: 24, Address: address{Street: "123 Fake St", City: "Springfield"}},
	{Name: "Bob", Age: 32, Address: address{Street: "125 Fake St", City: "Springfield"}},
}
