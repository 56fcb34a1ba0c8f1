package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"construction_estimation/internal/usecase"
)

const defaultAPIBaseURL = "http://localhost:8080"

// Toolset executes the registered tools against the use case layer. Tool
// failures are reported inside the result payload as {"error": ...}; only
// an unknown tool name bubbles up as a protocol error.
type Toolset struct {
	clients    usecase.IClientUseCase
	estimates  usecase.IEstimateUseCase
	invoices   usecase.IInvoiceUseCase
	httpClient *http.Client
	apiBaseURL string
}

func NewToolset(clients usecase.IClientUseCase, estimates usecase.IEstimateUseCase, invoices usecase.IInvoiceUseCase, apiBaseURL string) *Toolset {
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	return &Toolset{
		clients:    clients,
		estimates:  estimates,
		invoices:   invoices,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBaseURL: apiBaseURL,
	}
}

// Call runs the named tool and returns its text payload. The second
// return is false when no tool with that name exists.
func (t *Toolset) Call(ctx context.Context, name string, args map[string]any) (string, bool) {
	switch name {
	case "list_clients":
		return t.listClients(ctx), true
	case "get_client_details":
		return t.getClientDetails(ctx, stringArg(args, "client_id")), true
	case "list_estimates":
		return t.listEstimates(ctx, stringArg(args, "client_id")), true
	case "get_estimate_details":
		return t.getEstimateDetails(ctx, stringArg(args, "estimate_id")), true
	case "create_estimate":
		return t.createEstimate(ctx, createEstimateArgs{
			ClientID:    stringArg(args, "client_id"),
			Title:       stringArg(args, "title"),
			Description: stringArg(args, "description"),
			TotalAmount: stringArg(args, "total_amount"),
			Status:      stringArg(args, "status"),
		}), true
	case "update_estimate":
		return t.updateEstimate(ctx, updateEstimateArgs{
			EstimateID:  stringArg(args, "estimate_id"),
			Title:       stringArg(args, "title"),
			Description: stringArg(args, "description"),
			TotalAmount: stringArg(args, "total_amount"),
			Status:      stringArg(args, "status"),
			ValidUntil:  stringArg(args, "valid_until"),
		}), true
	case "get_estimate_statistics":
		return t.getEstimateStatistics(ctx), true
	case "list_invoices":
		return t.listInvoices(ctx, stringArg(args, "client_id"), stringArg(args, "estimate_id")), true
	case "get_client_financial_summary":
		return t.getClientFinancialSummary(ctx, stringArg(args, "client_id")), true
	case "get_database_schema":
		return t.getDatabaseSchema(), true
	case "get_api_routes":
		return t.getAPIRoutes(ctx), true
	default:
		return "", false
	}
}

// stringArg reads a string argument, tolerating absent keys and non-string
// values.
func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// toolError is the in-band failure payload shared by all tools.
type toolError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func errorPayload(message string) string {
	return renderJSON(toolError{Error: message})
}

func failurePayload(message string, err error) string {
	return renderJSON(toolError{Error: message, Details: err.Error()})
}

// renderJSON pretty-prints a payload for the text content block.
func renderJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to serialize result","details":%q}`, err.Error())
	}
	return string(data)
}
