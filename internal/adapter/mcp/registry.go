package mcp

// toolDefinitions returns the catalog advertised by tools/list. The order
// matters for clients that render tools in list order.
func toolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "list_clients",
			Description: "Get all clients with basic information",
			InputSchema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "get_client_details",
			Description: "Get detailed client information including estimates and invoices",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"client_id": {Type: "string", Description: "The GUID of the client"},
				},
				Required: []string{"client_id"},
			},
		},
		{
			Name:        "list_estimates",
			Description: "Get all estimates with optional client filter",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"client_id": {Type: "string", Description: "Optional: Filter by client GUID"},
				},
			},
		},
		{
			Name:        "get_estimate_details",
			Description: "Get detailed information about a specific estimate",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"estimate_id": {Type: "string", Description: "The GUID of the estimate"},
				},
				Required: []string{"estimate_id"},
			},
		},
		{
			Name:        "create_estimate",
			Description: "Create a new estimate for a client",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"client_id":    {Type: "string", Description: "The GUID of the client"},
					"title":        {Type: "string", Description: "Title of the estimate"},
					"description":  {Type: "string", Description: "Detailed description of the work"},
					"total_amount": {Type: "string", Description: "Total amount in decimal format"},
					"status":       {Type: "string", Description: "Status: Draft, Sent, Approved, or Rejected"},
				},
				Required: []string{"client_id", "title", "description", "total_amount"},
			},
		},
		{
			Name:        "get_estimate_statistics",
			Description: "Get statistics about estimates (counts, averages, status breakdown)",
			InputSchema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "list_invoices",
			Description: "Get all invoices with optional filters",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"client_id":   {Type: "string", Description: "Optional: Filter by client GUID"},
					"estimate_id": {Type: "string", Description: "Optional: Filter by estimate GUID"},
				},
			},
		},
		{
			Name:        "get_client_financial_summary",
			Description: "Get comprehensive financial summary for a client",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"client_id": {Type: "string", Description: "The GUID of the client"},
				},
				Required: []string{"client_id"},
			},
		},
		{
			Name:        "update_estimate",
			Description: "Update an existing estimate (title, description, totalAmount, status, validUntil)",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"estimate_id":  {Type: "string", Description: "The GUID of the estimate to update"},
					"title":        {Type: "string", Description: "Optional: New title for the estimate"},
					"description":  {Type: "string", Description: "Optional: New description"},
					"total_amount": {Type: "string", Description: "Optional: New total amount in decimal format"},
					"status":       {Type: "string", Description: "Optional: New status (Draft, Sent, Approved, or Rejected)"},
					"valid_until":  {Type: "string", Description: "Optional: New valid until date (ISO 8601 format)"},
				},
				Required: []string{"estimate_id"},
			},
		},
		{
			Name:        "get_database_schema",
			Description: "Get the complete database schema in OpenAPI/JSON Schema format for front-end development",
			InputSchema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
		{
			Name:        "get_api_routes",
			Description: "Get the complete REST API routes from the live Swagger endpoint with full request/response models",
			InputSchema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
	}
}
