package branch

import "directory-backend/internal/validation"

// Rule sets for the branch endpoints. The plain listing endpoint carries no
// schema, so arbitrary query parameters pass through.

func CreateSchema() validation.Schema {
	return validation.Schema{
		Body: []validation.Field{
			{Name: "name", Required: true, NonEmpty: true, Message: "Branch name cannot be empty"},
			{Name: "address", Required: true, NonEmpty: true, Message: "Branch address cannot be empty"},
			{Name: "phone", Required: true, NonEmpty: true, Message: "Branch phone cannot be empty"},
		},
	}
}

func UpdateSchema() validation.Schema {
	return validation.Schema{
		Params: idParams(),
		Body: []validation.Field{
			{Name: "name", NonEmpty: true, Message: "Branch name cannot be empty"},
			{Name: "address", NonEmpty: true, Message: "Branch address cannot be empty"},
			{Name: "phone", NonEmpty: true, Message: "Branch phone cannot be empty"},
		},
	}
}

func IDSchema() validation.Schema {
	return validation.Schema{Params: idParams()}
}

func idParams() []validation.Field {
	return []validation.Field{
		{Name: "id", Required: true, NonEmpty: true, Message: "Branch id cannot be empty"},
	}
}
