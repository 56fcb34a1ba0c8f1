package mcp

// getDatabaseSchema returns the static data-model description front-end
// developers code against. Maps marshal with sorted keys, which keeps the
// output stable across runs. Mirrors the entities in
// internal/domain/entities; keep the two in sync when the model changes.
func (t *Toolset) getDatabaseSchema() string {
	schema := map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "Construction Estimation API Schema",
			"description": "Complete database schema for the Construction Estimation system",
			"version":     "1.0.0",
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Client": map[string]any{
					"type":        "object",
					"description": "A client for construction projects",
					"required":    []string{"name", "email"},
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"format":      "uuid",
							"description": "Unique identifier for the client",
							"readOnly":    true,
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Client name",
							"example":     "ABC Construction",
						},
						"email": map[string]any{
							"type":        "string",
							"format":      "email",
							"description": "Client email address",
							"example":     "contact@abc.com",
						},
						"phone": map[string]any{
							"type":        "string",
							"description": "Client phone number",
							"example":     "555-1234",
						},
						"address": map[string]any{
							"type":        "string",
							"description": "Street address",
							"example":     "123 Main St",
						},
						"city": map[string]any{
							"type":        "string",
							"description": "City",
							"example":     "Springfield",
						},
						"state": map[string]any{
							"type":        "string",
							"description": "State or province",
							"example":     "IL",
						},
						"zipCode": map[string]any{
							"type":        "string",
							"description": "ZIP or postal code",
							"example":     "62701",
						},
						"createdAt": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "When the client was created",
							"readOnly":    true,
						},
						"updatedAt": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "When the client was last updated",
							"readOnly":    true,
						},
					},
					"relationships": map[string]any{
						"estimates": map[string]any{
							"type":        "one-to-many",
							"entity":      "Estimate",
							"description": "All estimates associated with this client",
						},
						"invoices": map[string]any{
							"type":        "one-to-many",
							"entity":      "Invoice",
							"description": "All invoices associated with this client",
						},
					},
				},
				"Estimate": map[string]any{
					"type":        "object",
					"description": "A construction project estimate",
					"required":    []string{"clientId", "title", "totalAmount"},
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"format":      "uuid",
							"description": "Unique identifier for the estimate",
							"readOnly":    true,
						},
						"clientId": map[string]any{
							"type":        "string",
							"format":      "uuid",
							"description": "ID of the client this estimate is for",
						},
						"estimateNumber": map[string]any{
							"type":        "string",
							"description": "Auto-generated estimate number (format: EST-YYYY-###)",
							"example":     "EST-2025-001",
							"readOnly":    true,
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short title for the estimate",
							"example":     "Kitchen Remodel",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Detailed description of the work",
							"example":     "Complete kitchen renovation including cabinets, countertops, and appliances",
						},
						"totalAmount": map[string]any{
							"type":        "number",
							"format":      "decimal",
							"description": "Total estimated cost",
							"example":     25000.00,
							"minimum":     0,
						},
						"status": map[string]any{
							"type":        "string",
							"description": "Current status of the estimate",
							"enum":        []string{"Draft", "Sent", "Approved", "Rejected"},
							"example":     "Draft",
						},
						"validUntil": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "Date until which the estimate is valid",
							"nullable":    true,
						},
						"createdAt": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "When the estimate was created",
							"readOnly":    true,
						},
						"updatedAt": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "When the estimate was last updated",
							"readOnly":    true,
						},
					},
					"relationships": map[string]any{
						"client": map[string]any{
							"type":        "many-to-one",
							"entity":      "Client",
							"description": "The client this estimate belongs to",
						},
						"invoices": map[string]any{
							"type":        "one-to-many",
							"entity":      "Invoice",
							"description": "Invoices generated from this estimate",
						},
					},
				},
				"Invoice": map[string]any{
					"type":        "object",
					"description": "An invoice for construction work",
					"required":    []string{"clientId", "amount"},
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"format":      "uuid",
							"description": "Unique identifier for the invoice",
							"readOnly":    true,
						},
						"estimateId": map[string]any{
							"type":        "string",
							"format":      "uuid",
							"description": "ID of the estimate this invoice is based on (optional)",
							"nullable":    true,
						},
						"clientId": map[string]any{
							"type":        "string",
							"format":      "uuid",
							"description": "ID of the client this invoice is for",
						},
						"invoiceNumber": map[string]any{
							"type":        "string",
							"description": "Auto-generated invoice number (format: INV-YYYY-###)",
							"example":     "INV-2025-001",
							"readOnly":    true,
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Description of the invoiced work",
							"example":     "First payment for kitchen remodel",
						},
						"amount": map[string]any{
							"type":        "number",
							"format":      "decimal",
							"description": "Invoice amount",
							"example":     12500.00,
							"minimum":     0,
						},
						"status": map[string]any{
							"type":        "string",
							"description": "Current status of the invoice",
							"enum":        []string{"Draft", "Sent", "Paid", "Overdue"},
							"example":     "Sent",
						},
						"dueDate": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "Date when payment is due",
							"nullable":    true,
						},
						"paidDate": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "Date when the invoice was paid",
							"nullable":    true,
						},
						"createdAt": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "When the invoice was created",
							"readOnly":    true,
						},
						"updatedAt": map[string]any{
							"type":        "string",
							"format":      "date-time",
							"description": "When the invoice was last updated",
							"readOnly":    true,
						},
					},
					"relationships": map[string]any{
						"client": map[string]any{
							"type":        "many-to-one",
							"entity":      "Client",
							"description": "The client this invoice belongs to",
						},
						"estimate": map[string]any{
							"type":        "many-to-one",
							"entity":      "Estimate",
							"description": "The estimate this invoice is based on (if any)",
							"nullable":    true,
						},
					},
				},
				"EstimateStatus": map[string]any{
					"type":        "string",
					"description": "Status of an estimate",
					"enum":        []string{"Draft", "Sent", "Approved", "Rejected"},
					"enumDescriptions": map[string]any{
						"Draft":    "Estimate is being prepared",
						"Sent":     "Estimate has been sent to client",
						"Approved": "Client has approved the estimate",
						"Rejected": "Client has rejected the estimate",
					},
				},
				"InvoiceStatus": map[string]any{
					"type":        "string",
					"description": "Status of an invoice",
					"enum":        []string{"Draft", "Sent", "Paid", "Overdue"},
					"enumDescriptions": map[string]any{
						"Draft":   "Invoice is being prepared",
						"Sent":    "Invoice has been sent to client",
						"Paid":    "Invoice has been paid",
						"Overdue": "Invoice payment is overdue",
					},
				},
			},
		},
	}
	return renderJSON(schema)
}
