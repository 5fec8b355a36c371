package tools

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/invopop/jsonschema"
)

// ModeDescriptor advertises one interaction mode to clients, with the JSON
// schema of the request body its endpoint accepts.
type ModeDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Method      string          `json:"method"`
	Endpoint    string          `json:"endpoint"`
	Models      []string        `json:"models"`
	Parameters  json.RawMessage `json:"parameters"`
}

var reflector = &jsonschema.Reflector{
	DoNotReference: true,
	ExpandedStruct: true,
}

func NewModeDescriptor(name, description, method, endpoint string, models []string, input any) (ModeDescriptor, error) {
	schema, err := StructToJSONSchema(input)
	if err != nil {
		return ModeDescriptor{}, err
	}
	return ModeDescriptor{
		Name:        name,
		Description: description,
		Method:      method,
		Endpoint:    endpoint,
		Models:      models,
		Parameters:  schema,
	}, nil
}

// StructToJSONSchema reflects the schema of a struct or struct pointer.
func StructToJSONSchema(v any) ([]byte, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, errors.New("schema input must be a struct")
	}
	return reflector.Reflect(v).MarshalJSON()
}
