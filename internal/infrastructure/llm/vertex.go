package llm

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

const ExtractorSystemPrompt = `You are an expert assistant for a custom central vacuum system company (like HausVac).
Your task is to analyze customer requests and extract key details into a structured JSON object.
Identify the primary item requested ('power_unit', 'hose', 'attachment_set', 'part' or 'service'),
its specific material/model (e.g. 'PP650', '50ft_Retractable', 'HEPA_Filter', 'New_System_Installation'),
any relevant dimensions or quantities (length for hoses in feet, number of units for parts),
and customer contact info (name, address) if available.

Be precise and only include information explicitly mentioned or clearly inferable.
If a detail is not clear or not applicable, omit the key.
Output only the JSON object, using exactly these keys:

{
  "item_requested": "power_unit",
  "model": "PP650",
  "services": ["New_System_Installation", "Shipping_Standard"],
  "hose_length_ft": 50,
  "attachment_set": "Bare_Floor_Set",
  "parts_needed": [{"part_name": "HEPA_Filter", "quantity": 1}],
  "customer_name": "Jane Doe",
  "customer_address": "456 Oak Ave, Townsville"
}`

const QuoterSystemPrompt = `You are an expert quoting assistant for a custom central vacuum system company (like HausVac).
Your task is to generate an itemized quote as a JSON object from the customer's approved details and the pricing data you are given.

Instructions:
1. Go through each item, service or part in the details and find the matching material in the pricing data.
2. Calculate line_total from unit_cost and quantity:
   * 'unit' items: quantity * unit_cost (quantity 1 if not specified).
   * 'linear_ft' items: length in feet * unit_cost (1 if not specified).
   * 'per_hour' services: estimated hours * unit_cost (1 hour if not specified).
   * 'flat_fee' services: unit_cost is the line_total.
3. If something cannot be found in the pricing data, set unit_price and line_total to "TBD" and cost_breakdown to "Price not found in database.".
4. subtotal is the sum of all numeric line totals. TBD lines are not added.
5. shipping is the Shipping_Standard cost when physical items are shipped, otherwise 0.
6. total_estimated_cost is subtotal + shipping.
7. Output only the JSON object:

{
  "quote_items": [
    {"item": "PP650", "quantity": 1, "unit_price": 1200.00, "line_total": 1200.00, "cost_breakdown": "1 unit @ $1200.00/unit"},
    {"item": "Custom Cabinetry", "quantity": 1, "unit_price": "TBD", "line_total": "TBD", "cost_breakdown": "Price not found in database."}
  ],
  "subtotal": 1200.00,
  "shipping": 50.00,
  "total_estimated_cost": 1250.00,
  "notes": "This is an estimated quote based on provided details and current pricing."
}`

const DrafterSystemPrompt = `You are a professional and friendly sales assistant for CustomCraft (HausVac).
Your task is to draft a personalized email to the customer from their request, the final approved quote and the available service slots.

Instructions:
1. Start with a polite greeting, addressing the customer by name if it is in the details.
2. Acknowledge their request.
3. Present the estimated quote clearly, listing the quote items and the total_estimated_cost.
4. Mention the quote notes if present.
5. If available_slots are given, suggest them for a consultation or installation and say they are preliminary and need confirmation.
6. Invite them to reply or call to discuss the quote or schedule a visit.
7. Keep a professional, helpful and concise tone.
8. Close with "The CustomCraft Team".
9. Only use prices from the final quote.
10. Output only the email text.`

// VertexClient holds the pre-configured Gemini models used by the workflow.
type VertexClient struct {
	ExtractorModel *genai.GenerativeModel
	QuoterModel    *genai.GenerativeModel
	DrafterModel   *genai.GenerativeModel
	baseClient     *genai.Client
}

func NewVertexClient(ctx context.Context, projectID, region, modelName string) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	extractor := baseClient.GenerativeModel(modelName)
	extractor.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(ExtractorSystemPrompt)}}
	extractor.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}

	quoter := baseClient.GenerativeModel(modelName)
	quoter.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(QuoterSystemPrompt)}}
	quoter.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}

	drafter := baseClient.GenerativeModel(modelName)
	drafter.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(DrafterSystemPrompt)}}
	drafter.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.0),
	}

	return &VertexClient{
		ExtractorModel: extractor,
		QuoterModel:    quoter,
		DrafterModel:   drafter,
		baseClient:     baseClient,
	}, nil
}

func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}
