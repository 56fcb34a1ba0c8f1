package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const apiStartHint = "Make sure the Construction Estimation API is running. Start it with: go run ./cmd/api"

// getAPIRoutes fetches the live OpenAPI document from the REST API's
// swagger endpoint and wraps it with consumption metadata. The host part
// of every URL is replaced with a {baseUrl} placeholder so the document
// works against any deployment.
func (t *Toolset) getAPIRoutes(ctx context.Context) string {
	swaggerURL := t.apiBaseURL + "/swagger/doc.json"
	log.Printf("fetching API routes from %s", swaggerURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, swaggerURL, nil)
	if err != nil {
		return failurePayload("Failed to retrieve API routes", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return renderJSON(toolError{
			Error:   "Could not connect to API",
			Details: err.Error(),
			Hint:    apiStartHint,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return renderJSON(toolError{
			Error:   "Failed to fetch API routes",
			Details: fmt.Sprintf("API returned status code %d. Make sure the API is running at %s", resp.StatusCode, t.apiBaseURL),
			Hint:    apiStartHint,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failurePayload("Failed to retrieve API routes", err)
	}

	var swaggerDoc map[string]any
	if err := json.Unmarshal(body, &swaggerDoc); err != nil {
		return errorPayload("Failed to parse Swagger JSON")
	}

	swaggerDoc["servers"] = []any{
		map[string]any{
			"url":         "{baseUrl}",
			"description": fmt.Sprintf("API base URL (e.g., %s for development)", defaultAPIBaseURL),
		},
	}

	enhanced := map[string]any{
		"swagger_spec": swaggerDoc,
		"metadata": map[string]any{
			"development_urls": map[string]any{
				"http": t.apiBaseURL,
			},
			"note":       "Replace {baseUrl} in the swagger_spec with your actual API base URL",
			"fetched_at": time.Now().UTC().Format(time.RFC3339Nano),
		},
	}
	return renderJSON(enhanced)
}
