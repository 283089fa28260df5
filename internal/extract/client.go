package extract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"idscan/internal/models"
)

// Extractor produces identity fields from a base64-encoded document image.
// Implementations must not fail: unreadable input or an unavailable backend
// yields a simulated result instead, marked as such.
type Extractor interface {
	Extract(ctx context.Context, image string) models.ExtractedFields
}

const extractionPrompt = `You are an expert at extracting information from ID documents. Extract all relevant personal information from the ID image provided, including: full name, ID number, date of birth, expiry date, and address. Return ONLY a JSON object with the fields: fullName, idNumber, dateOfBirth, expiryDate, address. If you can't read some information, put null for that field. Format dates as YYYY-MM-DD if possible. DO NOT include explanatory text.`

// Client calls Gemini to read identity documents. A Client built without an
// API key is still usable; every call takes the simulated-data path.
type Client struct {
	genai   *genai.Client
	model   string
	timeout time.Duration
}

// NewClient initializes the Gemini client. An empty API key is not an error:
// the whole point of the fallback generator is to keep the flow alive when
// the external service is unusable.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	c := &Client{model: model, timeout: timeout}
	if strings.TrimSpace(apiKey) == "" {
		log.Println("extract: GEMINI_API_KEY not set, all extractions will use simulated data")
		return c, nil
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init Gemini client: %w", err)
	}
	c.genai = gc
	return c, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c.genai == nil {
		return nil
	}
	return c.genai.Close()
}

// Extract reads the five identity fields out of a document image. It never
// returns an error: any failure (missing key, network, timeout, malformed
// response) is substituted with one simulated record. This is a one-shot
// substitution, not a retry.
func (c *Client) Extract(ctx context.Context, image string) models.ExtractedFields {
	fields, err := c.callModel(ctx, image)
	if err != nil {
		log.Println("extract: model call failed, falling back to simulated data:", err)
		return Simulated()
	}
	log.Println("extract: model call succeeded")
	return fields
}

func (c *Client) callModel(ctx context.Context, image string) (models.ExtractedFields, error) {
	var out models.ExtractedFields

	if c.genai == nil {
		return out, errors.New("missing GEMINI_API_KEY")
	}

	format, data, err := decodeImage(image)
	if err != nil {
		return out, fmt.Errorf("bad image payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.genai.GenerativeModel(c.model)
	// Ask Gemini to return JSON only
	model.GenerationConfig = genai.GenerationConfig{ResponseMIMEType: "application/json"}

	resp, err := model.GenerateContent(ctx, genai.Text(extractionPrompt), genai.ImageData(format, data))
	if err != nil {
		return out, fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return out, errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		} else {
			sb.WriteString(fmt.Sprint(part))
		}
	}
	jsonStr := strings.TrimSpace(sb.String())
	if jsonStr == "" {
		return out, errors.New("no text in Gemini response")
	}

	// Normalize: strip code fences and extract the first JSON object if needed
	jsonStr = stripCodeFences(jsonStr)
	if candidate, ok := extractFirstJSON(jsonStr); ok {
		jsonStr = candidate
	}

	return parseFields(jsonStr)
}
