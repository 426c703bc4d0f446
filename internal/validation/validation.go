// Package validation runs declarative per-endpoint rule sets as fiber
// middleware. A schema names which request sections to check (body, params,
// query); one generic interpreter walks the rules and stops at the first
// failure, so a request never reaches a handler with malformed input.
package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// Field is one named rule. Message is the human-readable text reported when
// any of its checks fails.
type Field struct {
	Name     string
	Required bool
	Kind     Kind
	NonEmpty bool
	Email    bool
	Message  string
}

// Schema lists the rule sets per request section. Sections without rules are
// not inspected, so list endpoints accept arbitrary extra query parameters.
type Schema struct {
	Body   []Field
	Params []Field
	Query  []Field
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Int decodes from a JSON number or a numeric string. Bind request bodies
// with it wherever a schema declares a number, so the binder accepts exactly
// what the number rule accepts.
type Int int

func (n *Int) UnmarshalJSON(raw []byte) error {
	s := strings.Trim(string(raw), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Int(f)
	return nil
}

// New builds the middleware for a schema. Failures short-circuit with
// 400 "Validation error: <Section>: <message>".
func New(schema Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(schema.Body) > 0 {
			body := map[string]any{}
			if len(c.Body()) > 0 {
				if err := json.Unmarshal(c.Body(), &body); err != nil {
					return fail("Body", "invalid JSON body")
				}
			}
			if msg := checkFields(schema.Body, func(name string) (any, bool) {
				v, ok := body[name]
				return v, ok
			}); msg != "" {
				return fail("Body", msg)
			}
		}
		if len(schema.Params) > 0 {
			if msg := checkFields(schema.Params, func(name string) (any, bool) {
				v := c.Params(name)
				return v, v != ""
			}); msg != "" {
				return fail("Params", msg)
			}
		}
		if len(schema.Query) > 0 {
			if msg := checkFields(schema.Query, func(name string) (any, bool) {
				v := c.Query(name)
				return v, v != ""
			}); msg != "" {
				return fail("Query", msg)
			}
		}
		return c.Next()
	}
}

func fail(section, message string) error {
	return fiber.NewError(fiber.StatusBadRequest, "Validation error: "+section+": "+message)
}

func checkFields(fields []Field, lookup func(name string) (any, bool)) string {
	for _, f := range fields {
		value, present := lookup(f.Name)
		if !present || value == nil {
			if f.Required {
				return f.Message
			}
			continue
		}
		if msg := checkValue(f, value); msg != "" {
			return msg
		}
	}
	return ""
}

func checkValue(f Field, value any) string {
	switch f.Kind {
	case KindNumber:
		switch v := value.(type) {
		case float64:
			// JSON numbers decode to float64.
		case string:
			// Params and query values arrive as strings; numeric strings
			// coerce per the rule kind.
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return f.Message
			}
		default:
			return f.Message
		}
	default:
		s, ok := value.(string)
		if !ok {
			return f.Message
		}
		if f.NonEmpty && strings.TrimSpace(s) == "" {
			return f.Message
		}
		if f.Email && !emailPattern.MatchString(s) {
			return f.Message
		}
	}
	return ""
}
