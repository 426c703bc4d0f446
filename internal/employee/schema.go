package employee

import "directory-backend/internal/validation"

// Rule sets for the employee endpoints.

func CreateSchema() validation.Schema {
	return validation.Schema{
		Body: []validation.Field{
			{Name: "name", Required: true, NonEmpty: true, Message: "Employee name cannot be empty"},
			{Name: "position", Required: true, NonEmpty: true, Message: "Employee position cannot be empty"},
			{Name: "department", Required: true, NonEmpty: true, Message: "Employee department cannot be empty"},
			{Name: "email", Required: true, Email: true, Message: "Employee email must be a valid email address"},
			{Name: "phone", Required: true, NonEmpty: true, Message: "Employee phone cannot be empty"},
			{Name: "branchId", Required: true, Kind: validation.KindNumber, Message: "Employee branch id must be a number"},
		},
	}
}

func UpdateSchema() validation.Schema {
	return validation.Schema{
		Params: idParams(),
		Body: []validation.Field{
			{Name: "name", NonEmpty: true, Message: "Employee name cannot be empty"},
			{Name: "position", NonEmpty: true, Message: "Employee position cannot be empty"},
			{Name: "department", NonEmpty: true, Message: "Employee department cannot be empty"},
			{Name: "email", Email: true, Message: "Employee email must be a valid email address"},
			{Name: "phone", NonEmpty: true, Message: "Employee phone cannot be empty"},
			{Name: "branchId", Kind: validation.KindNumber, Message: "Employee branch id must be a number"},
		},
	}
}

func IDSchema() validation.Schema {
	return validation.Schema{Params: idParams()}
}

func BranchParamSchema() validation.Schema {
	return validation.Schema{
		Params: []validation.Field{
			{Name: "branchId", Required: true, Kind: validation.KindNumber, Message: "Branch id must be a number"},
		},
	}
}

func DepartmentParamSchema() validation.Schema {
	return validation.Schema{
		Params: []validation.Field{
			{Name: "department", Required: true, NonEmpty: true, Message: "Department cannot be empty"},
		},
	}
}

func idParams() []validation.Field {
	return []validation.Field{
		{Name: "id", Required: true, NonEmpty: true, Message: "Employee id cannot be empty"},
	}
}
