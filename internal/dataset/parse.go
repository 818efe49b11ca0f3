package dataset

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// Shape identifies how the record list was wrapped in the source JSON.
type Shape int

const (
	// ShapeList is a top-level JSON array of records.
	ShapeList Shape = iota + 1
	// ShapeIndexed is a top-level object whose values are records, keyed by
	// arbitrary index strings ({"0": {...}, "1": {...}}).
	ShapeIndexed
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeIndexed:
		return "indexed"
	default:
		return "unknown"
	}
}

// Dataset is the normalized, validated record list.
type Dataset struct {
	Source  string
	Shape   Shape
	Records []Record
	Issues  []Issue
	// Total counts every element in the input, valid or not.
	Total int
}

// LoadOptions controls how Load treats rejected records.
type LoadOptions struct {
	// Strict makes any rejected record fail the load with *IssuesError.
	Strict bool
}

// Load reads a dataset file and parses it.
func Load(ctx context.Context, path string, opts LoadOptions) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	ds, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	ds.Source = path

	if opts.Strict && len(ds.Issues) > 0 {
		return ds, &IssuesError{Issues: ds.Issues}
	}
	return ds, nil
}

// Parse normalizes raw JSON into a record list. Records failing validation
// are reported in Dataset.Issues and left out of Dataset.Records. An empty
// list or object yields an empty dataset, not an error.
func Parse(raw []byte) (*Dataset, error) {
	shape, elems, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Shape: shape, Total: len(elems)}
	for i, e := range elems {
		issue := Issue{Index: i, Key: e.key}

		msg, err := validateRecord([]byte(e.raw))
		if err != nil {
			return nil, err
		}
		if msg != "" {
			issue.LearnerID = gjson.Get(e.raw, "LearnerID").String()
			issue.Message = msg
			ds.Issues = append(ds.Issues, issue)
			continue
		}

		rec, err := decodeRecord([]byte(e.raw))
		if err != nil {
			issue.LearnerID = gjson.Get(e.raw, "LearnerID").String()
			issue.Message = err.Error()
			ds.Issues = append(ds.Issues, issue)
			continue
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

type element struct {
	key string
	raw string
}

// normalize decides the input shape and returns its elements in the order
// they are aggregated.
func normalize(raw []byte) (Shape, []element, error) {
	if !gjson.ValidBytes(raw) {
		return 0, nil, fmt.Errorf("%w: not valid JSON", ErrInvalidShape)
	}

	root := gjson.ParseBytes(raw)
	var elems []element

	switch {
	case root.IsArray():
		root.ForEach(func(_, v gjson.Result) bool {
			elems = append(elems, element{raw: v.Raw})
			return true
		})
		return ShapeList, elems, nil

	case root.IsObject():
		root.ForEach(func(k, v gjson.Result) bool {
			elems = append(elems, element{key: k.String(), raw: v.Raw})
			return true
		})
		orderIndexedKeys(elems)
		return ShapeIndexed, elems, nil

	default:
		return 0, nil, fmt.Errorf("%w: want an array or an object of records, got %s", ErrInvalidShape, root.Type)
	}
}

// orderIndexedKeys puts array-index keys first in ascending numeric order and
// leaves the rest in document order.
func orderIndexedKeys(elems []element) {
	sort.SliceStable(elems, func(i, j int) bool {
		ni, iok := arrayIndex(elems[i].key)
		nj, jok := arrayIndex(elems[j].key)
		switch {
		case iok && jok:
			return ni < nj
		case iok:
			return true
		default:
			return false
		}
	})
}

func arrayIndex(key string) (uint64, bool) {
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	if strconv.FormatUint(n, 10) != key {
		return 0, false
	}
	return n, true
}
