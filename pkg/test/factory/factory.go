package factory

import (
	fab "github.com/Goldziher/fabricator"

	"tdm/internal/core/model/request"
)

// Every field gets an explicit default so nothing is filled with random
// data that would trip validation (the phone format in particular).

func CreateContactRequest(overrides ...map[string]any) request.CreateContactRequest {
	defaults := map[string]any{
		"FirstName":   "Ivan",
		"LastName":    "Petrov",
		"Phone":       "+375 (29) 123-45-67",
		"Email":       "",
		"Address":     "Minsk, Niamiha 5",
		"Description": "",
	}

	return build[request.CreateContactRequest](defaults, overrides)
}

func UpdateContactRequest(overrides ...map[string]any) request.UpdateContactRequest {
	defaults := map[string]any{
		"FirstName":   "Ivan",
		"LastName":    "Petrov",
		"Phone":       "+375 (29) 123-45-67",
		"Email":       "",
		"Address":     "Minsk, Niamiha 5",
		"Description": "",
	}

	return build[request.UpdateContactRequest](defaults, overrides)
}

func CreateTodoItemRequest(overrides ...map[string]any) request.CreateTodoItemRequest {
	defaults := map[string]any{
		"Title":       "Buy groceries",
		"Details":     "",
		"DueDate":     (*int64)(nil),
		"Status":      "",
		"Priority":    "",
		"ContactID":   (*int64)(nil),
		"Description": "",
	}

	return build[request.CreateTodoItemRequest](defaults, overrides)
}

func UpdateTodoItemRequest(overrides ...map[string]any) request.UpdateTodoItemRequest {
	defaults := map[string]any{
		"Title":       "Buy groceries",
		"Details":     "",
		"DueDate":     (*int64)(nil),
		"Status":      "",
		"Priority":    "",
		"ContactID":   (*int64)(nil),
		"Description": "",
	}

	return build[request.UpdateTodoItemRequest](defaults, overrides)
}

func CreateUserRequest(overrides ...map[string]any) request.CreateUserRequest {
	defaults := map[string]any{
		"Login":       "jdoe",
		"Password":    "s3cret!",
		"RoleID":      int64(1),
		"Description": "",
	}

	return build[request.CreateUserRequest](defaults, overrides)
}

func UpdateUserRequest(overrides ...map[string]any) request.UpdateUserRequest {
	defaults := map[string]any{
		"Login":       "jdoe",
		"IsBlocked":   false,
		"RoleID":      int64(1),
		"Description": "",
	}

	return build[request.UpdateUserRequest](defaults, overrides)
}

// build merges overrides onto defaults before handing fabricator a single
// map; Build only reads its first overrides argument.
func build[T any](defaults map[string]any, overrides []map[string]any) T {
	merged := make(map[string]any, len(defaults))

	for field, value := range defaults {
		merged[field] = value
	}

	for _, override := range overrides {
		for field, value := range override {
			merged[field] = value
		}
	}

	return fab.New(*new(T)).Build(merged)
}
