// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docs

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/danielhkuo/quickly-ask/models"
)

const jsonContent = "application/json"

func questionBody() *openapi3.RequestBodyRef {
	s := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("description", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("category", openapi3.NewStringSchema().WithMinLength(1))
	s.Required = []string{"title", "description", "category"}
	return jsonBody(s)
}

func answerBody() *openapi3.RequestBodyRef {
	s := openapi3.NewObjectSchema().
		WithProperty("content", openapi3.NewStringSchema().
			WithMinLength(1).
			WithMaxLength(models.MaxContentLength))
	s.Required = []string{"content"}
	return jsonBody(s)
}

func voteBody() *openapi3.RequestBodyRef {
	s := openapi3.NewObjectSchema().WithProperty("vote", openapi3.NewInt64Schema())
	s.Required = []string{"vote"}
	return jsonBody(s)
}

func jsonBody(s *openapi3.Schema) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(s),
	}
}

func idParam(description string) openapi3.Parameters {
	return openapi3.Parameters{{
		Value: openapi3.NewPathParameter("id").
			WithDescription(description).
			WithSchema(openapi3.NewInt64Schema()),
	}}
}

func queryParam(name, description string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewQueryParameter(name).
			WithDescription(description).
			WithSchema(openapi3.NewStringSchema()),
	}
}

func responses(byStatus map[int]string) *openapi3.Responses {
	opts := make([]openapi3.NewResponsesOption, 0, len(byStatus))
	for status, description := range byStatus {
		opts = append(opts, openapi3.WithStatus(status, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(description),
		}))
	}
	return openapi3.NewResponses(opts...)
}

// New describes every route served by the API
func New(serverURL string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Q&A API Documentation",
			Version:     "1.0.0",
			Description: "API documentation for managing questions, answers, and voting",
		},
		Paths: openapi3.NewPaths(),
	}

	doc.Paths.Set("/questions", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:   "Get all questions",
			Responses: responses(map[int]string{200: "A list of questions.", 500: "Unable to fetch questions."}),
		},
		Post: &openapi3.Operation{
			Summary:     "Create a new question",
			RequestBody: questionBody(),
			Responses:   responses(map[int]string{201: "Question created successfully.", 400: "Invalid request data.", 500: "Unable to create question."}),
		},
	})

	doc.Paths.Set("/questions/search", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary: "Search questions by title or category",
			Parameters: openapi3.Parameters{
				queryParam("title", "Title substring, case-insensitive"),
				queryParam("category", "Category substring, case-insensitive"),
			},
			Responses: responses(map[int]string{200: "Questions matching every given term.", 400: "Invalid search parameters.", 500: "Unable to fetch a question."}),
		},
	})

	doc.Paths.Set("/questions/{id}", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:    "Get a specific question by ID",
			Parameters: idParam("ID of the question to retrieve"),
			Responses:  responses(map[int]string{200: "A question object.", 404: "Question not found.", 500: "Unable to fetch questions."}),
		},
		Put: &openapi3.Operation{
			Summary:     "Update a specific question",
			Parameters:  idParam("ID of the question to update"),
			RequestBody: questionBody(),
			Responses:   responses(map[int]string{200: "Question updated successfully.", 400: "Invalid request data.", 404: "Question not found.", 500: "Unable to update question."}),
		},
		Delete: &openapi3.Operation{
			Summary:    "Delete a question with its answers and votes",
			Parameters: idParam("ID of the question to delete"),
			Responses:  responses(map[int]string{200: "Question post has been deleted successfully.", 404: "Question not found.", 500: "Unable to delete question."}),
		},
	})

	doc.Paths.Set("/questions/{id}/answers", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:    "List the answers of a question",
			Parameters: idParam("ID of the question"),
			Responses:  responses(map[int]string{200: "A list of answers.", 500: "Unable to fetch answers."}),
		},
		Post: &openapi3.Operation{
			Summary:     "Answer a question",
			Parameters:  idParam("ID of the question"),
			RequestBody: answerBody(),
			Responses:   responses(map[int]string{201: "Answer created successfully.", 400: "Invalid request data.", 404: "Question not found.", 500: "Unable to create answers."}),
		},
		Delete: &openapi3.Operation{
			Summary:    "Delete all answers of a question and the question itself",
			Parameters: idParam("ID of the question"),
			Responses:  responses(map[int]string{200: "All answers for the question have been deleted successfully.", 404: "Question not found.", 500: "Unable to delete answers."}),
		},
	})

	doc.Paths.Set("/questions/{id}/vote", &openapi3.PathItem{
		Post: &openapi3.Operation{
			Summary:     "Vote on a question",
			Parameters:  idParam("ID of the question"),
			RequestBody: voteBody(),
			Responses:   responses(map[int]string{200: "Vote on the question has been recorded successfully.", 400: "Invalid request data.", 404: "Question not found.", 500: "Unable to vote question."}),
		},
	})

	doc.Paths.Set("/questions/{id}/votes", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:    "Count and sum the votes on a question",
			Parameters: idParam("ID of the question"),
			Responses:  responses(map[int]string{200: "Vote tally.", 404: "Question not found.", 500: "Unable to fetch votes."}),
		},
	})

	doc.Paths.Set("/answers/{id}/vote", &openapi3.PathItem{
		Post: &openapi3.Operation{
			Summary:     "Vote on an answer",
			Parameters:  idParam("ID of the answer"),
			RequestBody: voteBody(),
			Responses:   responses(map[int]string{200: "Vote on the answer has been recorded successfully.", 400: "Invalid request data.", 404: "Answer not found.", 500: "Unable to vote answer."}),
		},
	})

	doc.Paths.Set("/answers/{id}/votes", &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:    "Count and sum the votes on an answer",
			Parameters: idParam("ID of the answer"),
			Responses:  responses(map[int]string{200: "Vote tally.", 404: "Answer not found.", 500: "Unable to fetch votes."}),
		},
	})

	if serverURL != "" {
		doc.Servers = openapi3.Servers{{URL: serverURL}}
	}
	return doc
}
