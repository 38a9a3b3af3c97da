// Package parser turns JSON text into a dom.Value tree. It leans on
// encoding/json for tokenizing, escape decoding and number-grammar
// validation, then rebuilds the decoded data through the document model's
// construction API.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsoncanon/internal/dom"
	"github.com/mcncl/jsoncanon/internal/errors"
)

// Parse reads a single JSON value from reader and builds the document tree.
func Parse(reader io.Reader) (dom.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		if stderrors.Is(err, io.EOF) {
			// Decode returns io.EOF when the stream held nothing to decode.
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		if stderrors.As(err, &unmarshalTypeError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON type error at offset %d for type %s", unmarshalTypeError.Offset, unmarshalTypeError.Type),
				errors.ErrInvalidJSON,
			)
		}
		return nil, errors.NewParsingError("failed to decode JSON", err)
	}

	// Reject trailing data after the first JSON value. Trailing whitespace up
	// to EOF is fine; a second decodable value is not.
	if decoder.More() {
		var trailing interface{}
		if err := decoder.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	return buildValue(raw)
}

// buildValue converts a decoded JSON value into its dom variant. Containers
// are rebuilt recursively; the tree owns every node it hands back.
func buildValue(raw interface{}) (dom.Value, error) {
	switch v := raw.(type) {
	case nil:
		return dom.NewNull(), nil
	case bool:
		return dom.NewBoolean(v), nil
	case string:
		return dom.NewString(v), nil
	case json.Number:
		return buildNumber(v)
	case []interface{}:
		arr := dom.NewArray()
		for _, elem := range v {
			value, err := buildValue(elem)
			if err != nil {
				return nil, err
			}
			arr.Append(value)
		}
		return arr, nil
	case map[string]interface{}:
		obj := dom.NewObject()
		for key, elem := range v {
			value, err := buildValue(elem)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		return obj, nil
	default:
		return nil, errors.NewParsingError(
			fmt.Sprintf("unsupported decoded value of type %T", raw),
			errors.ErrInvalidJSON,
		)
	}
}

// buildNumber keeps integral JSON numbers as 64-bit integers and everything
// else as floats. The decoder has already validated the number grammar.
func buildNumber(num json.Number) (dom.Value, error) {
	if i, err := num.Int64(); err == nil {
		return dom.NewInt(i), nil
	}
	f, err := num.Float64()
	if err != nil {
		return nil, errors.NewParsingError(
			fmt.Sprintf("number %q does not fit a 64-bit representation", num.String()),
			errors.ErrInvalidJSON,
		)
	}
	return dom.NewFloat(f), nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (dom.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (dom.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
