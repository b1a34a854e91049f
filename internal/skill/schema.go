package skill

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchema is the minimum shape a request body must have before it
// is decoded. Unknown fields are allowed; the platform adds new ones often.
// Null attributes and null slot values decode to their zero values.
var envelopeSchema = mustSchema(map[string]interface{}{
	"type":     "object",
	"required": []string{"request"},
	"properties": map[string]interface{}{
		"version": map[string]interface{}{"type": "string"},
		"session": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"new":       map[string]interface{}{"type": "boolean"},
				"sessionId": map[string]interface{}{"type": "string"},
				"attributes": map[string]interface{}{
					"type": []string{"object", "null"},
					"properties": map[string]interface{}{
						"difficulty":  map[string]interface{}{"type": "string"},
						"currentWord": map[string]interface{}{"type": "string"},
						"score":       map[string]interface{}{"type": "integer", "minimum": 0},
					},
				},
			},
		},
		"request": map[string]interface{}{
			"type":     "object",
			"required": []string{"type"},
			"properties": map[string]interface{}{
				"type": map[string]interface{}{"type": "string", "minLength": 1},
				"intent": map[string]interface{}{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]interface{}{
						"name": map[string]interface{}{"type": "string"},
						"slots": map[string]interface{}{
							"type": "object",
							"additionalProperties": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":  map[string]interface{}{"type": "string"},
									"value": map[string]interface{}{"type": []string{"string", "null"}},
								},
							},
						},
					},
				},
			},
		},
	},
})

func mustSchema(doc map[string]interface{}) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("skill: invalid envelope schema: %v", err))
	}
	return s
}

// DecodeRequest validates body against the envelope schema and decodes it.
func DecodeRequest(body []byte) (*RequestEnvelope, error) {
	result, err := envelopeSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, strings.Join(msgs, "; "))
	}
	var env RequestEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return &env, nil
}
