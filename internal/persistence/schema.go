package persistence

import (
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// snapshotSchema describes the stored board. Column entries and their fields
// are optional so that older or partial snapshots still load; what is present
// must have the right shape.
const snapshotSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"todo": {"$ref": "#/definitions/column"},
		"inprogress": {"$ref": "#/definitions/column"},
		"complete": {"$ref": "#/definitions/column"}
	},
	"definitions": {
		"column": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"tasks": {
					"type": "array",
					"items": {"$ref": "#/definitions/task"}
				}
			}
		},
		"task": {
			"type": "object",
			"required": ["id", "content"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"content": {"type": "string", "minLength": 1}
			}
		}
	}
}`

var schema = jsonschema.MustCompileString("kanban-snapshot.json", snapshotSchema)

// validateDocument checks a decoded JSON document against the snapshot schema
func validateDocument(doc any) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	leaf := firstLeaf(ve)
	location := leaf.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidSnapshot, location, leaf.Message)
}

// firstLeaf walks down the first cause chain to the most specific error
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
