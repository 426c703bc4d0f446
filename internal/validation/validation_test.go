package validation

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(schema Schema) *fiber.App {
	app := fiber.New()
	app.Post("/branches", New(schema), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/employees/branch/:branchId", New(schema), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/branches", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func branchBodySchema() Schema {
	return Schema{
		Body: []Field{
			{Name: "name", Required: true, NonEmpty: true, Message: "Branch name cannot be empty"},
			{Name: "address", Required: true, NonEmpty: true, Message: "Branch address cannot be empty"},
		},
	}
}

func TestBodyValid(t *testing.T) {
	app := testApp(branchBodySchema())
	status, body := post(t, app, `{"name":"Downtown","address":"123 Main St"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestBodyMissingRequiredField(t *testing.T) {
	app := testApp(branchBodySchema())
	status, body := post(t, app, `{"address":"123 Main St"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error: Body: Branch name cannot be empty", body)
}

func TestBodyEmptyString(t *testing.T) {
	app := testApp(branchBodySchema())
	status, body := post(t, app, `{"name":"","address":"123 Main St"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error: Body: Branch name cannot be empty", body)
}

func TestBodyWhitespaceOnlyString(t *testing.T) {
	app := testApp(branchBodySchema())
	status, body := post(t, app, `{"name":"   ","address":"123 Main St"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error: Body: Branch name cannot be empty", body)
}

func TestBodyFirstFailureWins(t *testing.T) {
	app := testApp(branchBodySchema())
	status, body := post(t, app, `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	// Both fields fail; only the first rule's message is reported.
	assert.Equal(t, "Validation error: Body: Branch name cannot be empty", body)
}

func TestBodyExtraFieldsPass(t *testing.T) {
	app := testApp(branchBodySchema())
	status, _ := post(t, app, `{"name":"Downtown","address":"123 Main St","unknown":42}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestBodyInvalidJSON(t *testing.T) {
	app := testApp(branchBodySchema())
	status, body := post(t, app, `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error: Body: invalid JSON body", body)
}

func TestOptionalFieldAbsentPasses(t *testing.T) {
	schema := Schema{
		Body: []Field{
			{Name: "name", NonEmpty: true, Message: "Branch name cannot be empty"},
		},
	}
	app := testApp(schema)

	status, _ := post(t, app, `{}`)
	assert.Equal(t, fiber.StatusOK, status)

	// Present but empty still fails.
	status, body := post(t, app, `{"name":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error: Body: Branch name cannot be empty", body)
}

func TestEmailFormat(t *testing.T) {
	schema := Schema{
		Body: []Field{
			{Name: "email", Required: true, Email: true, Message: "Employee email must be a valid email address"},
		},
	}
	app := testApp(schema)

	status, _ := post(t, app, `{"email":"alice@example.com"}`)
	assert.Equal(t, fiber.StatusOK, status)

	for _, bad := range []string{`"not-an-email"`, `"a@b"`, `"@example.com"`, `42`} {
		status, body := post(t, app, `{"email":`+bad+`}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Validation error: Body: Employee email must be a valid email address", body)
	}
}

func TestNumberKind(t *testing.T) {
	schema := Schema{
		Body: []Field{
			{Name: "branchId", Required: true, Kind: KindNumber, Message: "Employee branch id must be a number"},
		},
	}
	app := testApp(schema)

	status, _ := post(t, app, `{"branchId":7}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body := post(t, app, `{"branchId":"seven"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation error: Body: Employee branch id must be a number", body)
}

func TestIntDecodesNumbersAndNumericStrings(t *testing.T) {
	var target struct {
		BranchID Int `json:"branchId"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"branchId":7}`), &target))
	assert.Equal(t, Int(7), target.BranchID)

	require.NoError(t, json.Unmarshal([]byte(`{"branchId":"7"}`), &target))
	assert.Equal(t, Int(7), target.BranchID)

	assert.Error(t, json.Unmarshal([]byte(`{"branchId":"seven"}`), &target))
}

func TestParamsNumericCoercion(t *testing.T) {
	schema := Schema{
		Params: []Field{
			{Name: "branchId", Required: true, Kind: KindNumber, Message: "Branch id must be a number"},
		},
	}
	app := testApp(schema)

	req := httptest.NewRequest("GET", "/employees/branch/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/employees/branch/abc", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Validation error: Params: Branch id must be a number", string(raw))
}
